package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bird-chinese-community/bird2-autotype/internal/config"
	"github.com/bird-chinese-community/bird2-autotype/internal/i18n"
	"github.com/bird-chinese-community/bird2-autotype/internal/log"
	"github.com/bird-chinese-community/bird2-autotype/internal/scanner"
	"github.com/bird-chinese-community/bird2-autotype/pkg/cache"
	"github.com/bird-chinese-community/bird2-autotype/pkg/rewrite"
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process [path]",
	Short: "Annotate function return types in BIRD config files",
	Long: `Processes a single config file or every config file under a directory.
Without -i the processed text goes to stdout; with -i files are rewritten in
place. Functions that already declare a return type, and functions with no
return statement, are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd, args[0])
	},
}

func init() {
	processCmd.Flags().BoolP("in-place", "i", false, "Modify files in-place")
	processCmd.Flags().Int("jobs", 0, "Concurrent workers in directory mode (0 = one per CPU)")
	processCmd.Flags().Bool("no-cache", false, "Bypass the result cache")
}

// fileReport is the outcome of processing one file.
type fileReport struct {
	path         string
	output       string
	changed      bool
	functions    int
	annotated    int
	unterminated bool
	cached       bool
}

// pipeline bundles what one process/check invocation needs. The core transform
// is pure, so a single pipeline is safe to share across worker goroutines.
type pipeline struct {
	store *cache.Store
	lg    log.Logger
}

// run processes one file's content, consulting the result cache when enabled.
func (p *pipeline) run(path string) (fileReport, error) {
	content, err := scanner.ReadText(path)
	if err != nil {
		return fileReport{}, err
	}

	key := cache.Key([]byte(content))
	if p.store != nil {
		if e, ok := p.store.Get(key); ok {
			p.lg.Debug("cache hit", "path", path)
			return fileReport{
				path:      path,
				output:    e.Output,
				changed:   e.Output != content,
				functions: e.Functions,
				annotated: e.Annotated,
				cached:    true,
			}, nil
		}
	}

	res := rewrite.Process(content)
	rep := fileReport{
		path:         path,
		output:       res.Text(),
		changed:      res.Changed(),
		functions:    res.Functions,
		annotated:    len(res.Annotated),
		unterminated: res.Unterminated,
	}

	// Unterminated files are passed through but not cached: the flag itself
	// has to resurface as a warning on every run.
	if p.store != nil && !res.Unterminated {
		p.store.Put(key, cache.Entry{
			Output:    rep.output,
			Functions: rep.functions,
			Annotated: rep.annotated,
		})
	}
	return rep, nil
}

func runProcess(cmd *cobra.Command, path string) error {
	cfg, lg, msgs, err := setup(cmd)
	if err != nil {
		return err
	}

	inPlace := cfg.InPlace
	if flag, _ := cmd.Flags().GetBool("in-place"); flag {
		inPlace = true
	}
	if jobs, _ := cmd.Flags().GetInt("jobs"); jobs > 0 {
		cfg.Jobs = jobs
	}
	noCache, _ := cmd.Flags().GetBool("no-cache")

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf(msgs.ErrPathNotExists, path)
	}

	p := &pipeline{store: openStore(cfg, noCache, lg), lg: lg}
	defer saveStore(p.store, lg)

	if !info.IsDir() {
		return processSingle(p, path, inPlace, lg, msgs)
	}
	return processDir(cmd, cfg, p, path, inPlace, lg, msgs)
}

func processSingle(p *pipeline, path string, inPlace bool, lg log.Logger, msgs i18n.Messages) error {
	rep, err := p.run(path)
	if err != nil {
		return fmt.Errorf(msgs.ErrProcessing, err)
	}
	if rep.unterminated {
		lg.Warn(fmt.Sprintf(msgs.Unterminated, path))
	}

	if !inPlace {
		fmt.Print(rep.output)
		return nil
	}
	if err := writeBack(rep); err != nil {
		return fmt.Errorf(msgs.ErrProcessing, err)
	}
	fmt.Fprintln(os.Stderr, fmt.Sprintf(msgs.Processed, path))
	return nil
}

func processDir(cmd *cobra.Command, cfg *config.Config, p *pipeline, root string, inPlace bool, lg log.Logger, msgs i18n.Messages) error {
	files, err := discover(cfg, root)
	if err != nil {
		return fmt.Errorf(msgs.ErrProcessing, err)
	}
	if len(files) == 0 {
		fmt.Printf(msgs.NoConfFiles+"\n", root)
		return nil
	}

	// Each document is processed independently; fan out, but emit results in
	// discovery order.
	reports := make([]fileReport, len(files))
	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.EffectiveJobs())
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			rep, err := p.run(f.FullPath)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf(msgs.ErrProcessing, err)
	}

	var batch []string
	for _, rep := range reports {
		if rep.unterminated {
			lg.Warn(fmt.Sprintf(msgs.Unterminated, rep.path))
		}
		if inPlace {
			if err := writeBack(rep); err != nil {
				return fmt.Errorf(msgs.ErrProcessing, err)
			}
			lg.Info(fmt.Sprintf(msgs.Processed, rep.path),
				"functions", rep.functions, "annotated", rep.annotated)
			continue
		}
		batch = append(batch, fmt.Sprintf("# === File: %s ===\n%s\n", rep.path, rep.output))
	}
	if !inPlace {
		fmt.Println(strings.Join(batch, "\n"))
	}
	return nil
}

func discover(cfg *config.Config, root string) ([]scanner.FileInfo, error) {
	opts := scanner.DefaultOptions()
	opts.Extensions = cfg.Extensions
	return scanner.New(opts).Scan(root)
}

// writeBack rewrites the file only when processing changed it, preserving the
// original file mode.
func writeBack(rep fileReport) error {
	if !rep.changed {
		return nil
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(rep.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(rep.path, []byte(rep.output), mode); err != nil {
		return fmt.Errorf("writing %s: %w", rep.path, err)
	}
	return nil
}

func openStore(cfg *config.Config, noCache bool, lg log.Logger) *cache.Store {
	if noCache || !cfg.CacheEnabled {
		return nil
	}
	store, err := cache.Open(config.CachePath(), cfg.CacheMaxEntries)
	if err != nil {
		lg.Warn("result cache unavailable", "error", err)
		return nil
	}
	return store
}

func saveStore(store *cache.Store, lg log.Logger) {
	if store == nil {
		return
	}
	if err := store.Save(); err != nil {
		lg.Warn("saving result cache", "error", err)
	}
}
