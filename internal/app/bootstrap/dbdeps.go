// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/gatherhub/gatherhub/internal/gateway"
)

// DBDeps holds backend dependencies for the app. GatherHub owns no
// database of its own; its only backend is the core API client.
type DBDeps struct {
	API *gateway.Client
}
