package reportgen

import "errors"

// Error kinds for the generation pipeline. Fatal kinds abort the request;
// the others surface as warnings on a degraded result. Callers classify
// with errors.Is.
var (
	// ErrAssembly covers faults before any render: unreadable assets,
	// internal composer failures.
	ErrAssembly = errors.New("reportgen: assembly failed")

	// ErrRender covers patch/template mismatches and conversion failures.
	// No partial artifacts exist when it is returned.
	ErrRender = errors.New("reportgen: render failed")

	// ErrExport covers failures staging artifacts for upload. Upload and
	// cleanup failures themselves are non-fatal and come back as result
	// warnings instead.
	ErrExport = errors.New("reportgen: export failed")
)
