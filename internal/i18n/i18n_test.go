package i18n

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"chinese LANG", map[string]string{"LANG": "zh_CN.UTF-8"}, "zh"},
		{"traditional chinese", map[string]string{"LANG": "zh_TW.UTF-8"}, "zh"},
		{"english LANG", map[string]string{"LANG": "en_US.UTF-8"}, "en"},
		{"LC_ALL wins over LANG", map[string]string{"LC_ALL": "zh_CN.UTF-8", "LANG": "en_US.UTF-8"}, "zh"},
		{"C locale falls through", map[string]string{"LANG": "C"}, "en"},
		{"empty environment", nil, "en"},
		{"unrelated language", map[string]string{"LANG": "de_DE.UTF-8"}, "en"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
				t.Setenv(key, "")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if got := Detect(); got != tc.want {
				t.Errorf("Detect() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFor(t *testing.T) {
	if got := For("zh"); got.Lang != "zh" {
		t.Errorf("For(zh).Lang = %q", got.Lang)
	}
	if got := For("en"); got.Lang != "en" {
		t.Errorf("For(en).Lang = %q", got.Lang)
	}
	// Unknown values fall back to English rather than failing.
	if got := For("fr"); got.Lang != "en" {
		t.Errorf("For(fr).Lang = %q", got.Lang)
	}

	t.Setenv("LC_ALL", "zh_CN.UTF-8")
	if got := For("auto"); got.Lang != "zh" {
		t.Errorf("For(auto).Lang = %q under zh locale", got.Lang)
	}
}
