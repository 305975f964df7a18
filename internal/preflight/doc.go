// Package preflight provides readiness checks for the directories alecheck
// writes to.
//
// Export targets are usually mounted shares (the facilis and nexis volumes)
// that can disappear between runs. The CLI checks them before writing
// manifests or descriptors, and the HTTP service reports them on /healthz.
package preflight
