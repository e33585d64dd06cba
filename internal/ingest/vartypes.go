package ingest

import "github.com/lpforge/lpforge/pkg/problem"

// resolveVarTypes maps per-variable tags onto the internal enumeration.
// "I" marks an integer variable; every other tag, and an absent array,
// resolves to continuous. Deliberately lenient: there is no error path.
//
// A tag array longer or shorter than the variable count is tolerated; the
// assembled descriptor is always exactly numVariables long, padded with
// continuous.
func resolveVarTypes(tags []string, n int) []problem.VarType {
	out := make([]problem.VarType, n)
	for i, tag := range tags {
		if i >= n {
			break
		}
		if tag == "I" {
			out[i] = problem.Integer
		}
	}
	return out
}
