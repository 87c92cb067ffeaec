package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sales-tracker/backend/internal/integration/adapters"
	"github.com/sales-tracker/backend/internal/integration/persistence/model"
)

var daysAgoPlaceholder = regexp.MustCompile(`\{\{days_ago:(\d+)\}\}`)

func (t *testContext) todayIs(date string) error {
	today, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}
	t.timeMock.SetCurrentTime(today.Add(12 * time.Hour))
	return nil
}

func (t *testContext) iAmAuthenticatedAsUser(userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user id '%s': %w", userID, err)
	}
	t.currentUserID = id

	token, err := adapters.SignAccessToken(testJWTSecret, "", id, "seller@example.com", 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmAuthenticatedWithAnExpiredToken() error {
	t.currentUserID = uuid.New()

	token, err := adapters.SignAccessToken(testJWTSecret, "", t.currentUserID, "seller@example.com", -time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = token
	return nil
}

// theFollowingSalesExist inserts sales for the current user.
// Columns: date, time, product, platform, quantity, amount.
func (t *testContext) theFollowingSalesExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		date, err := t.parseDate(row["date"])
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(row["quantity"])
		if err != nil {
			return fmt.Errorf("invalid quantity '%s': %w", row["quantity"], err)
		}
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount '%s': %w", row["amount"], err)
		}

		now := time.Now().UTC()
		sale := &model.SaleModel{
			ID:         uuid.New(),
			UserID:     t.currentUserID,
			Date:       date,
			Time:       row["time"],
			ProductID:  row["product"],
			PlatformID: row["platform"],
			Quantity:   quantity,
			NetAmount:  amount,
			Currency:   "BRL",
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := t.db.DbConn.Create(sale).Error; err != nil {
			return err
		}
		t.lastSaleID = sale.ID
	}
	return nil
}

// theFollowingRefundsExist inserts unlinked refunds for the current user.
// Columns: date, product, platform, quantity, amount.
func (t *testContext) theFollowingRefundsExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, row := range rows {
		date, err := t.parseDate(row["date"])
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(row["quantity"])
		if err != nil {
			return fmt.Errorf("invalid quantity '%s': %w", row["quantity"], err)
		}
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount '%s': %w", row["amount"], err)
		}

		now := time.Now().UTC()
		refund := &model.RefundModel{
			ID:         uuid.New(),
			UserID:     t.currentUserID,
			Date:       date,
			ProductID:  row["product"],
			PlatformID: row["platform"],
			Quantity:   quantity,
			Amount:     amount,
			Reason:     "customer request",
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := t.db.DbConn.Create(refund).Error; err != nil {
			return err
		}
		t.lastRefundID = refund.ID
	}
	return nil
}

// theFollowingExpensesExist inserts expenses for the current user, creating categories by name.
// Columns: date, description, amount, type, category.
func (t *testContext) theFollowingExpensesExist(table *godog.Table) error {
	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	categories := map[string]uuid.UUID{}
	for _, row := range rows {
		date, err := t.parseDate(row["date"])
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount '%s': %w", row["amount"], err)
		}

		now := time.Now().UTC()
		expense := &model.ExpenseModel{
			ID:          uuid.New(),
			UserID:      t.currentUserID,
			Date:        date,
			Description: row["description"],
			Amount:      amount,
			Type:        row["type"],
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if name := row["category"]; name != "" {
			categoryID, ok := categories[name]
			if !ok {
				categoryID = uuid.New()
				category := &model.CategoryModel{
					ID:          categoryID,
					UserID:      t.currentUserID,
					Name:        name,
					Color:       "#6366F1",
					Icon:        "tag",
					ExpenseType: row["type"],
					CreatedAt:   now,
					UpdatedAt:   now,
				}
				if err := t.db.DbConn.Create(category).Error; err != nil {
					return err
				}
				categories[name] = categoryID
			}
			expense.CategoryID = &categoryID
		}

		if err := t.db.DbConn.Create(expense).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) aProductExistsWithIDAndName(productID, name string) error {
	now := time.Now().UTC()
	product := &model.ProductModel{
		ID:        productID,
		UserID:    t.currentUserID,
		Name:      name,
		Price:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(product).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) theWebhookSecretIsSent() error {
	t.headers["X-Webhook-Secret"] = testWebhookSecret
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{sale_id}}", t.lastSaleID.String())
	content = strings.ReplaceAll(content, "{{refund_id}}", t.lastRefundID.String())
	content = strings.ReplaceAll(content, "{{id}}", t.lastID.String())
	content = strings.ReplaceAll(content, "{{today}}", t.timeMock.Today())

	return daysAgoPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		n, _ := strconv.Atoi(daysAgoPlaceholder.FindStringSubmatch(match)[1])
		return t.timeMock.DaysAgo(n)
	})
}

func (t *testContext) parseDate(raw string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", t.replacePlaceholders(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s': %w", raw, err)
	}
	return date, nil
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
		raw:     bodyBytes,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture created ids so later steps can reference them
	if id, ok := parseID(responseBody["id"]); ok {
		t.lastID = id
	}
	if id, ok := parseID(responseBody["saleId"]); ok {
		t.lastSaleID = id
	}
	if id, ok := parseID(responseBody["refundId"]); ok {
		t.lastRefundID = id
	}

	return nil
}

func parseID(value any) (uuid.UUID, bool) {
	raw, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(text string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if body, ok := t.response.body.(map[string]any); ok {
		if _, exists := body[text]; exists {
			return nil
		}
	}

	if !strings.Contains(string(t.response.raw), text) {
		return fmt.Errorf("response does not contain '%s': %s", text, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != t.replacePlaceholders(expectedValue) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := t.response.headers.Get(header)
	if !strings.Contains(value, t.replacePlaceholders(expected)) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, value)
	}
	return nil
}

func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return value, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func tableRows(table *godog.Table) ([]map[string]string, error) {
	if table == nil || len(table.Rows) < 2 {
		return nil, errors.New("table needs a header row and at least one data row")
	}

	header := table.Rows[0].Cells
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i].Value] = cell.Value
		}
		rows = append(rows, values)
	}
	return rows, nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
