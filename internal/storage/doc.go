// Package storage provides the filesystem-backed holders for uploaded
// documents and generated artifacts. Uploads are transient and deleted by
// the pipeline once read; artifacts are retained for the lifetime of the
// process and served by name through the download endpoint.
package storage
