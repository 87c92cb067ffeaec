// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/google/uuid"
)

// GetDashboardStateInput represents the input for reading a viewer's dashboard state.
type GetDashboardStateInput struct {
	UserID uuid.UUID
	ViewID string
}

// GetDashboardStateOutput represents the viewer's latest snapshot.
type GetDashboardStateOutput struct {
	Status     DashboardStatus
	Loading    bool
	Error      string
	Generation int64
	Result     *DashboardResult
}

// GetDashboardStateUseCase handles reading the latest dashboard snapshot.
type GetDashboardStateUseCase struct {
	states StateStore
}

// NewGetDashboardStateUseCase creates a new GetDashboardStateUseCase instance.
func NewGetDashboardStateUseCase(states StateStore) *GetDashboardStateUseCase {
	return &GetDashboardStateUseCase{
		states: states,
	}
}

// Execute returns the viewer's snapshot. A viewer with no cycle yet is loading.
func (uc *GetDashboardStateUseCase) Execute(_ context.Context, input GetDashboardStateInput) (*GetDashboardStateOutput, error) {
	state, ok := uc.states.Get(NewViewKey(input.UserID, input.ViewID))
	if !ok {
		return &GetDashboardStateOutput{
			Status:  DashboardStatusLoading,
			Loading: true,
		}, nil
	}

	output := &GetDashboardStateOutput{
		Status:     state.Status,
		Loading:    state.Status == DashboardStatusLoading,
		Error:      state.Error,
		Generation: state.Generation,
	}
	if state.Status == DashboardStatusReady {
		output.Result = state.Result
	}

	return output, nil
}
