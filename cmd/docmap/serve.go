package main

import (
	"fmt"
	"net/http"

	dochttp "github.com/fwojciec/docmap/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := dochttp.NewServer(deps.Documents, deps.Sections, deps.Extractors, deps.Logger)

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)
	return http.ListenAndServe(c.Addr, server)
}
