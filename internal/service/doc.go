// Package service implements the application's business logic,
// coordinating the task registry, upload storage, and the background
// task runner. Handlers call into this layer and never touch storage
// or the runner directly.
package service
