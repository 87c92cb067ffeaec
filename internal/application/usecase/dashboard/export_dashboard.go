// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"bytes"
	"context"
	"fmt"
)

// ExportDashboardOutput represents a rendered dashboard report.
type ExportDashboardOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportDashboardUseCase renders the dashboard as a downloadable report.
type ExportDashboardUseCase struct {
	getDashboard *GetDashboardUseCase
	exporter     ReportExporter
}

// NewExportDashboardUseCase creates a new ExportDashboardUseCase instance.
func NewExportDashboardUseCase(getDashboard *GetDashboardUseCase, exporter ReportExporter) *ExportDashboardUseCase {
	return &ExportDashboardUseCase{
		getDashboard: getDashboard,
		exporter:     exporter,
	}
}

// Execute builds the dashboard for the filter and renders it.
func (uc *ExportDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*ExportDashboardOutput, error) {
	if input.ViewID == "" {
		input.ViewID = "export"
	}

	output, err := uc.getDashboard.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := uc.exporter.Export(ctx, output.Result, &buf); err != nil {
		return nil, fmt.Errorf("failed to render dashboard report: %w", err)
	}

	return &ExportDashboardOutput{
		FileName: fmt.Sprintf("dashboard_%s_%s%s",
			output.Result.StartDate,
			output.Result.EndDate,
			uc.exporter.FileExtension(),
		),
		ContentType: uc.exporter.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}
