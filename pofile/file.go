package pofile

// FillOptions controls FillFile.
type FillOptions struct {
	// DryRun computes the result without writing the file.
	DryRun bool
}

// FillFile fills the empty translation slots of the catalog at path.
//
// The file is read completely, rewritten in memory and written back in one
// atomic step, and only when at least one slot was filled. On error the
// file on disk is left unchanged.
func FillFile(path string, lookup LookupFunc, opts FillOptions) (Result, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return Result{}, err
	}

	updated, res := Rewrite(lines, Scan(lines), lookup)
	if res.Filled == 0 || opts.DryRun {
		return res, nil
	}

	if err := WriteLines(path, updated); err != nil {
		return Result{}, err
	}
	return res, nil
}
