package corpus

import (
	"fmt"
	"path/filepath"
)

// WATPath returns the conventional location of a target's WAT dump:
// <root>/<algo>/<lang>/<algo>.wat.
func WATPath(root string, t Target) string {
	return filepath.Join(root, t.Algo, t.Lang, t.Algo+".wat")
}

// GramDir returns the directory holding a target's serialized gram files.
func GramDir(root string, t Target) string {
	return filepath.Join(root, t.Algo, t.Lang, "grams")
}

// GramFileName returns the file name of one serialized n-gram table.
func GramFileName(algo string, n int) string {
	return fmt.Sprintf("%s_bg_%dgram.txt", algo, n)
}

// GramPath returns the location of a target's n-gram table for one size:
// <root>/<algo>/<lang>/grams/<algo>_bg_<n>gram.txt.
func GramPath(root string, t Target, n int) string {
	return filepath.Join(GramDir(root, t), GramFileName(t.Algo, n))
}
