package ddmform

import (
	"io/fs"

	"github.com/goliatone/go-ddmform/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the stylesheet and geolocation script used by the
// vanilla renderer so Go applications can serve them without a build step.
//
// Typical mount:
//
//	mux.Handle("/assets/ddmform/",
//	  http.StripPrefix("/assets/ddmform/",
//	    http.FileServerFS(ddmform.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
