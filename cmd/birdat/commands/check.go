package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bird-chinese-community/bird2-autotype/internal/scanner"
	"github.com/bird-chinese-community/bird2-autotype/pkg/rewrite"
	"github.com/bird-chinese-community/bird2-autotype/pkg/types"
)

// CheckOutput is the per-file JSON shape for check results.
type CheckOutput struct {
	Path         string             `json:"path"`
	Functions    int                `json:"functions"`
	Pending      []types.Annotation `json:"pending"`
	Unterminated bool               `json:"unterminated,omitempty"`
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Report functions missing a return-type annotation",
	Long: `Runs the annotation pass without writing anything and lists every
function whose header would gain a return type. Exits non-zero when any are
pending, so it can gate CI or a pre-commit hook.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args[0])
	},
}

func init() {
	checkCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

func runCheck(cmd *cobra.Command, path string) error {
	cfg, lg, msgs, err := setup(cmd)
	if err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf(msgs.ErrPathNotExists, path)
	}

	var paths []string
	if info.IsDir() {
		files, err := discover(cfg, path)
		if err != nil {
			return fmt.Errorf(msgs.ErrProcessing, err)
		}
		if len(files) == 0 {
			fmt.Printf(msgs.NoConfFiles+"\n", path)
			return nil
		}
		for _, f := range files {
			paths = append(paths, f.FullPath)
		}
	} else {
		paths = []string{path}
	}

	pending := 0
	results := make([]CheckOutput, 0, len(paths))
	for _, p := range paths {
		content, err := scanner.ReadText(p)
		if err != nil {
			return fmt.Errorf(msgs.ErrProcessing, err)
		}
		res := rewrite.Process(content)
		if res.Unterminated {
			lg.Warn(fmt.Sprintf(msgs.Unterminated, p))
		}
		pending += len(res.Annotated)
		results = append(results, CheckOutput{
			Path:         p,
			Functions:    res.Functions,
			Pending:      res.Annotated,
			Unterminated: res.Unterminated,
		})
	}

	if jsonOutput {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Println(string(data))
	} else {
		for _, r := range results {
			for _, a := range r.Pending {
				fmt.Printf("%s:%d: function %s -> %s\n", r.Path, a.Line, a.Function, a.TypeName)
			}
		}
	}

	if pending > 0 {
		return fmt.Errorf(msgs.CheckPending, pending)
	}
	if !jsonOutput {
		fmt.Println(msgs.CheckClean)
	}
	return nil
}
