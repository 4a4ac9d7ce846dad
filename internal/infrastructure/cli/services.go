package cli

import (
	"os"

	"github.com/felixgeelhaar/handoff/internal/application"
	"github.com/felixgeelhaar/handoff/internal/infrastructure/delivery"
	"github.com/felixgeelhaar/handoff/internal/infrastructure/storage"
)

// services bundles the application services wired against the current
// working directory.
type services struct {
	Repo   *storage.FilesystemRepository
	Audit  *application.AuditService
	Export *application.ExportService
	Import *application.ImportService
	Task   *application.TaskService
}

func buildServices() *services {
	cwd, _ := os.Getwd()
	repo := storage.NewFilesystemRepository(cwd)
	auditSvc := application.NewAuditService(repo)
	return &services{
		Repo:   repo,
		Audit:  auditSvc,
		Export: application.NewExportService(repo, auditSvc, delivery.Adapter{}),
		Import: application.NewImportService(repo, auditSvc),
		Task:   application.NewTaskService(repo, auditSvc),
	}
}
