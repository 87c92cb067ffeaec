package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
)

type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
	stats      map[uuid.UUID]*adapter.CategoryStats
	statsErr   error
	deleted    []uuid.UUID
}

func newFakeCategoryRepository(categories ...*entity.Category) *fakeCategoryRepository {
	repo := &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
	for _, category := range categories {
		repo.categories[category.ID] = category
	}
	return repo
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (r *fakeCategoryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, category := range r.categories {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (r *fakeCategoryRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, expenseType entity.ExpenseType) ([]*entity.Category, error) {
	all, _ := r.FindByUser(ctx, userID)
	var categories []*entity.Category
	for _, category := range all {
		if category.ExpenseType == expenseType {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (r *fakeCategoryRepository) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeCategoryRepository) ExistsByNameAndUser(_ context.Context, name string, userID uuid.UUID) (bool, error) {
	for _, category := range r.categories {
		if category.Name == name && category.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepository) GetExpenseStats(_ context.Context, _ []uuid.UUID, _, _ time.Time) (map[uuid.UUID]*adapter.CategoryStats, error) {
	return r.stats, r.statsErr
}

func categoryErrorCode(t *testing.T, err error) domainerror.CategoryErrorCode {
	t.Helper()
	var categoryErr *domainerror.CategoryError
	if !errors.As(err, &categoryErr) {
		t.Fatalf("expected CategoryError, got %v", err)
	}
	return categoryErr.Code
}

func TestCreateCategoryUseCase(t *testing.T) {
	userID := uuid.New()
	existing := entity.NewCategory(userID, "Anúncios", "#FF0000", "megaphone", nil, entity.ExpenseTypeVariable)
	foreign := entity.NewCategory(uuid.New(), "Outro", "#FF0000", "tag", nil, entity.ExpenseTypeFixed)
	missing := uuid.New()

	tests := []struct {
		name         string
		input        CreateCategoryInput
		expectedCode domainerror.CategoryErrorCode
	}{
		{
			name:  "valid with defaults",
			input: CreateCategoryInput{UserID: userID, Name: "Ferramentas"},
		},
		{
			name:  "subcategory",
			input: CreateCategoryInput{UserID: userID, Name: "Meta Ads", Color: "#abc", ParentID: &existing.ID, ExpenseType: entity.ExpenseTypeVariable},
		},
		{
			name:         "blank name",
			input:        CreateCategoryInput{UserID: userID, Name: "  "},
			expectedCode: domainerror.ErrCodeMissingCategoryFields,
		},
		{
			name:         "name too long",
			input:        CreateCategoryInput{UserID: userID, Name: "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijk"},
			expectedCode: domainerror.ErrCodeCategoryNameTooLong,
		},
		{
			name:         "invalid color",
			input:        CreateCategoryInput{UserID: userID, Name: "Taxas", Color: "red"},
			expectedCode: domainerror.ErrCodeInvalidColorFormat,
		},
		{
			name:         "invalid expense type",
			input:        CreateCategoryInput{UserID: userID, Name: "Taxas", ExpenseType: "monthly"},
			expectedCode: domainerror.ErrCodeInvalidCategoryExpenseType,
		},
		{
			name:         "duplicate name",
			input:        CreateCategoryInput{UserID: userID, Name: "Anúncios"},
			expectedCode: domainerror.ErrCodeCategoryNameExists,
		},
		{
			name:         "unknown parent",
			input:        CreateCategoryInput{UserID: userID, Name: "Taxas", ParentID: &missing},
			expectedCode: domainerror.ErrCodeCategoryNotFound,
		},
		{
			name:         "parent of another user",
			input:        CreateCategoryInput{UserID: userID, Name: "Taxas", ParentID: &foreign.ID},
			expectedCode: domainerror.ErrCodeNotAuthorizedCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCategoryRepository(existing, foreign)
			output, err := NewCreateCategoryUseCase(repo).Execute(context.Background(), tt.input)

			if tt.expectedCode != "" {
				if code := categoryErrorCode(t, err); code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, code)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.input.Color == "" && output.Category.Color != entity.DefaultCategoryColor {
				t.Errorf("expected default color, got %s", output.Category.Color)
			}
			if tt.input.ExpenseType == "" && output.Category.ExpenseType != entity.ExpenseTypeVariable {
				t.Errorf("expected variable expense type, got %s", output.Category.ExpenseType)
			}
		})
	}
}

func TestListCategoriesUseCase(t *testing.T) {
	userID := uuid.New()
	ads := entity.NewCategory(userID, "Anúncios", "#FF0000", "megaphone", nil, entity.ExpenseTypeVariable)
	tools := entity.NewCategory(userID, "Ferramentas", "#00FF00", "wrench", nil, entity.ExpenseTypeFixed)
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("with stats", func(t *testing.T) {
		repo := newFakeCategoryRepository(ads, tools)
		repo.stats = map[uuid.UUID]*adapter.CategoryStats{ads.ID: {ExpenseCount: 3, PeriodTotal: 450}}

		output, err := NewListCategoriesUseCase(repo).Execute(context.Background(), ListCategoriesInput{
			UserID:    userID,
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(output.Categories))
		}
		for _, cat := range output.Categories {
			if cat.ID == ads.ID && (cat.ExpenseCount != 3 || cat.PeriodTotal != 450) {
				t.Errorf("expected stats on ads category, got %+v", cat)
			}
			if cat.ID == tools.ID && cat.ExpenseCount != 0 {
				t.Errorf("expected no stats on tools category, got %+v", cat)
			}
		}
	})

	t.Run("stats failure is tolerated", func(t *testing.T) {
		repo := newFakeCategoryRepository(ads)
		repo.statsErr = errors.New("timeout")

		output, err := NewListCategoriesUseCase(repo).Execute(context.Background(), ListCategoriesInput{
			UserID:    userID,
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 1 {
			t.Errorf("expected 1 category, got %d", len(output.Categories))
		}
	})

	t.Run("filtered by type", func(t *testing.T) {
		repo := newFakeCategoryRepository(ads, tools)
		fixed := entity.ExpenseTypeFixed

		output, err := NewListCategoriesUseCase(repo).Execute(context.Background(), ListCategoriesInput{
			UserID:      userID,
			ExpenseType: &fixed,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 1 || output.Categories[0].ID != tools.ID {
			t.Errorf("expected only the fixed category, got %d", len(output.Categories))
		}
	})
}

func TestUpdateCategoryUseCase(t *testing.T) {
	userID := uuid.New()
	ads := entity.NewCategory(userID, "Anúncios", "#FF0000", "megaphone", nil, entity.ExpenseTypeVariable)
	tools := entity.NewCategory(userID, "Ferramentas", "#00FF00", "wrench", nil, entity.ExpenseTypeFixed)

	t.Run("renames and moves under parent", func(t *testing.T) {
		repo := newFakeCategoryRepository(ads, tools)
		name := "Meta Ads"

		output, err := NewUpdateCategoryUseCase(repo).Execute(context.Background(), UpdateCategoryInput{
			CategoryID: ads.ID,
			UserID:     userID,
			Name:       &name,
			ParentID:   &tools.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != name || output.Category.ParentID == nil {
			t.Errorf("unexpected category after update: %+v", output.Category)
		}
	})

	t.Run("rejects existing name", func(t *testing.T) {
		repo := newFakeCategoryRepository(ads, tools)
		name := "Ferramentas"

		_, err := NewUpdateCategoryUseCase(repo).Execute(context.Background(), UpdateCategoryInput{
			CategoryID: ads.ID,
			UserID:     userID,
			Name:       &name,
		})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeCategoryNameExists {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeCategoryNameExists, code)
		}
	})

	t.Run("rejects self parent", func(t *testing.T) {
		repo := newFakeCategoryRepository(ads)

		_, err := NewUpdateCategoryUseCase(repo).Execute(context.Background(), UpdateCategoryInput{
			CategoryID: ads.ID,
			UserID:     userID,
			ParentID:   &ads.ID,
		})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeMissingCategoryFields {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeMissingCategoryFields, code)
		}
	})

	t.Run("other user", func(t *testing.T) {
		repo := newFakeCategoryRepository(ads)
		color := "#000"

		_, err := NewUpdateCategoryUseCase(repo).Execute(context.Background(), UpdateCategoryInput{
			CategoryID: ads.ID,
			UserID:     uuid.New(),
			Color:      &color,
		})
		if code := categoryErrorCode(t, err); code != domainerror.ErrCodeNotAuthorizedCategory {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeNotAuthorizedCategory, code)
		}
	})
}

func TestDeleteCategoryUseCase(t *testing.T) {
	userID := uuid.New()
	ads := entity.NewCategory(userID, "Anúncios", "#FF0000", "megaphone", nil, entity.ExpenseTypeVariable)

	repo := newFakeCategoryRepository(ads)
	uc := NewDeleteCategoryUseCase(repo)

	_, err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: ads.ID, UserID: uuid.New()})
	if code := categoryErrorCode(t, err); code != domainerror.ErrCodeNotAuthorizedCategory {
		t.Errorf("expected %s, got %s", domainerror.ErrCodeNotAuthorizedCategory, code)
	}

	output, err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: ads.ID, UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Success || output.Name != "Anúncios" || len(repo.deleted) != 1 {
		t.Error("expected category to be deleted")
	}

	_, err = uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: ads.ID, UserID: userID})
	if code := categoryErrorCode(t, err); code != domainerror.ErrCodeCategoryNotFound {
		t.Errorf("expected %s, got %s", domainerror.ErrCodeCategoryNotFound, code)
	}
}
