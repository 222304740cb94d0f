package trim

import (
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Record is one audit row: which window of which file survived in which
// variant. Deterministic variants carry trial 0 and no seed.
type Record struct {
	Trial   int
	Algo    string
	Lang    string
	RelPath string // path below <algo>/<lang>/
	Total   int
	Kept    int
	Start   int
	Method  Method
	Seed    int64 // per-trial sub-seed, random method only
}

// Runner trims every corpus WAT below Root into variant trees under Out.
// Deterministic methods produce one variant named after the method; the
// random method produces trial_1..trial_N, each drawn with its own sub-seed
// derived from one master seed.
type Runner struct {
	Root   string
	Out    string
	Target int             // lines to keep
	Algos  map[string]bool // empty accepts every algorithm
	Langs  map[string]bool // empty accepts every language
}

// RunDeterministic produces the head, middle, or tail variant along with
// its audit log at <out>/<method>/trim_log.csv.
func (r *Runner) RunDeterministic(method Method) ([]Record, error) {
	if method == Random {
		return nil, fmt.Errorf("random trimming needs RunRandom")
	}
	files, err := r.findWATFiles()
	if err != nil {
		return nil, err
	}
	records, err := r.trimAll(files, string(method), 0, method, nil)
	if err != nil {
		return nil, err
	}
	if err := WriteAuditCSV(filepath.Join(r.Out, string(method), "trim_log.csv"), records); err != nil {
		return nil, err
	}
	return records, nil
}

// RunRandom produces trials variants. A zero seed derives the master seed
// from the clock; the effective seed is always logged so any run can be
// reproduced afterwards.
func (r *Runner) RunRandom(trials int, seed int64) ([]Record, error) {
	if trials < 1 {
		return nil, fmt.Errorf("trial count must be at least 1, got %d", trials)
	}
	files, err := r.findWATFiles()
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Info("random trim run", "master_seed", seed, "trials", trials, "target_lines", r.Target)
	master := rand.New(rand.NewSource(seed))

	var all []Record
	for trial := 1; trial <= trials; trial++ {
		trialSeed := master.Int63n(1 << 31)
		rng := rand.New(rand.NewSource(trialSeed))
		records, err := r.trimAll(files, TrialDir(trial), trial, Random, rng)
		if err != nil {
			return nil, err
		}
		for i := range records {
			records[i].Seed = trialSeed
		}
		if err := WriteAuditCSV(filepath.Join(r.Out, TrialDir(trial), "trim_log.csv"), records); err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

// TrialDir names the variant directory for one random trial.
func TrialDir(trial int) string { return fmt.Sprintf("trial_%d", trial) }

// findWATFiles collects <algo>/<lang>/....wat paths under Root, relative
// and sorted so every trial visits files in the same order. Files not
// nested at least two directories deep are ignored.
func (r *Runner) findWATFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(r.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".wat") {
			return nil
		}
		rel, err := filepath.Rel(r.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		parts := strings.Split(rel, "/")
		if len(parts) < 3 {
			return nil
		}
		if !r.accepts(parts[0], parts[1]) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", r.Root, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .wat files under %s", r.Root)
	}
	sort.Strings(files)
	return files, nil
}

func (r *Runner) accepts(algo, lang string) bool {
	if len(r.Algos) > 0 && !r.Algos[algo] {
		return false
	}
	if len(r.Langs) > 0 && !r.Langs[lang] {
		return false
	}
	return true
}

// trimAll trims every file into <out>/<variant>/, preserving the relative
// tree, and returns one record per file in visit order.
func (r *Runner) trimAll(files []string, variant string, trial int, method Method, rng *rand.Rand) ([]Record, error) {
	if r.Target < 1 {
		return nil, fmt.Errorf("target line count must be at least 1, got %d", r.Target)
	}
	records := make([]Record, 0, len(files))
	for _, rel := range files {
		parts := strings.Split(rel, "/")
		algo, lang := parts[0], parts[1]

		data, err := os.ReadFile(filepath.Join(r.Root, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rel, err)
		}
		lines := SplitLines(string(data))
		start := Start(method, len(lines), r.Target, rng)
		kept := Window(lines, r.Target, start)

		dst := filepath.Join(r.Out, variant, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, []byte(strings.Join(kept, "")), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", dst, err)
		}

		records = append(records, Record{
			Trial:   trial,
			Algo:    algo,
			Lang:    lang,
			RelPath: strings.Join(parts[2:], "/"),
			Total:   len(lines),
			Kept:    len(kept),
			Start:   start,
			Method:  method,
		})
	}
	return records, nil
}
