package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/sales-tracker/backend/internal/domain/entity"
	"github.com/sales-tracker/backend/internal/integration/persistence"
)

var seedPlatforms = []string{"hotmart", "kiwify", "eduzz"}

var seedProducts = []struct {
	id    string
	name  string
	price int64
}{
	{id: "curso-excel", name: "Curso de Excel", price: 197},
	{id: "ebook-vendas", name: "E-book Vendas Online", price: 47},
	{id: "mentoria", name: "Mentoria Individual", price: 997},
	{id: "planilha-fluxo", name: "Planilha Fluxo de Caixa", price: 29},
}

var seedExpenses = []struct {
	description string
	category    string
	expenseType entity.ExpenseType
	amount      int64
	everyDays   int
}{
	{description: "Anúncios Meta", category: "Marketing", expenseType: entity.ExpenseTypeVariable, amount: 120, everyDays: 2},
	{description: "Ferramentas SaaS", category: "Software", expenseType: entity.ExpenseTypeFixed, amount: 350, everyDays: 30},
	{description: "Contador", category: "Serviços", expenseType: entity.ExpenseTypeFixed, amount: 600, everyDays: 30},
	{description: "Taxas de plataforma", category: "Taxas", expenseType: entity.ExpenseTypeVariable, amount: 45, everyDays: 7},
}

// seedSummary counts the rows a seed run inserted.
type seedSummary struct {
	Products int
	Sales    int
	Refunds  int
	Expenses int
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo products, sales, refunds and expenses for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rawUserID, _ := cmd.Flags().GetString("user")
			days, _ := cmd.Flags().GetInt("days")
			randomSeed, _ := cmd.Flags().GetInt64("seed")

			userID, err := uuid.Parse(rawUserID)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			database, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer database.Close()

			end := time.Now().UTC().Truncate(24 * time.Hour)
			summary, err := seedDemoData(cmd.Context(), database.DB(), userID, end, days, rand.New(rand.NewSource(randomSeed)))
			if err != nil {
				return err
			}

			slog.Info("Seed completed",
				"user_id", userID,
				"products", summary.Products,
				"sales", summary.Sales,
				"refunds", summary.Refunds,
				"expenses", summary.Expenses,
			)
			return nil
		},
	}

	cmd.Flags().String("user", "", "User UUID that owns the demo data")
	cmd.Flags().Int("days", 30, "Number of days of history ending today")
	cmd.Flags().Int64("seed", 1, "Random seed for reproducible data")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// seedDemoData inserts demo rows for the days ending at end (inclusive).
// Products and categories that already exist for the user are reused.
func seedDemoData(ctx context.Context, db *gorm.DB, userID uuid.UUID, end time.Time, days int, rng *rand.Rand) (seedSummary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if days <= 0 {
		days = 30
	}

	productRepo := persistence.NewProductRepository(db)
	saleRepo := persistence.NewSaleRepository(db)
	refundRepo := persistence.NewRefundRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)

	var summary seedSummary

	for _, p := range seedProducts {
		product := entity.NewProduct(p.id, userID, p.name, decimal.NewFromInt(p.price))
		if err := productRepo.Create(ctx, product); err != nil {
			slog.Warn("Skipping existing product", "product_id", p.id, "error", err)
			continue
		}
		summary.Products++
	}

	existing, err := categoryRepo.FindByUser(ctx, userID)
	if err != nil {
		return summary, fmt.Errorf("failed to load categories: %w", err)
	}
	categories := make(map[string]uuid.UUID, len(existing))
	for _, c := range existing {
		categories[c.Name] = c.ID
	}

	for _, e := range seedExpenses {
		if _, ok := categories[e.category]; ok {
			continue
		}
		category := entity.NewCategory(userID, e.category, entity.DefaultCategoryColor, entity.DefaultCategoryIcon, nil, e.expenseType)
		if err := categoryRepo.Create(ctx, category); err != nil {
			return summary, fmt.Errorf("failed to create category %q: %w", e.category, err)
		}
		categories[e.category] = category.ID
	}

	start := end.AddDate(0, 0, -(days - 1))
	for day := 0; day < days; day++ {
		date := start.AddDate(0, 0, day)

		for i := rng.Intn(6); i > 0; i-- {
			p := seedProducts[rng.Intn(len(seedProducts))]
			quantity := 1 + rng.Intn(2)
			timeOfDay := fmt.Sprintf("%02d:%02d", 8+rng.Intn(14), rng.Intn(60))

			sale := entity.NewSale(
				userID,
				date,
				timeOfDay,
				p.id,
				seedPlatforms[rng.Intn(len(seedPlatforms))],
				quantity,
				decimal.NewFromInt(p.price*int64(quantity)),
				entity.DefaultCurrency,
			)
			if err := saleRepo.Create(ctx, sale); err != nil {
				return summary, fmt.Errorf("failed to create sale: %w", err)
			}
			summary.Sales++

			if rng.Intn(15) == 0 {
				saleID := sale.ID
				refund := entity.NewRefund(userID, date, &saleID, sale.ProductID, sale.PlatformID, 1, decimal.NewFromInt(p.price), "")
				if _, err := refundRepo.Create(ctx, refund); err != nil {
					return summary, fmt.Errorf("failed to create refund: %w", err)
				}
				summary.Refunds++
			}
		}

		for _, e := range seedExpenses {
			if day%e.everyDays != 0 {
				continue
			}
			categoryID := categories[e.category]
			expense := entity.NewExpense(userID, date, e.description, &categoryID, nil, decimal.NewFromInt(e.amount), e.expenseType)
			if err := expenseRepo.Create(ctx, expense); err != nil {
				return summary, fmt.Errorf("failed to create expense: %w", err)
			}
			summary.Expenses++
		}
	}

	return summary, nil
}
