package store

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/model"
)

// SheetTitle is the sheet every trend row lands on. The spreadsheet is shared;
// this service only ever appends to it.
const SheetTitle = "트렌드 분석"

const dataRange = "'트렌드 분석'!A2:T"

type SheetStore struct {
	svc     *sheets.Service
	sheetID string
	timeout time.Duration
}

func NewSheetStore(ctx context.Context, sheetID, email, privateKey string, timeout time.Duration) (*SheetStore, error) {
	conf := &jwt.Config{
		Email:      email,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &SheetStore{svc: svc, sheetID: sheetID, timeout: timeout}, nil
}

// Ensure creates the trend sheet with its header row when the spreadsheet does
// not have it yet.
func (s *SheetStore) Ensure(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc, err := s.svc.Spreadsheets.Get(s.sheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("loading spreadsheet: %w", err)
	}

	for _, sheet := range doc.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == SheetTitle {
			return nil
		}
	}

	_, err = s.svc.Spreadsheets.BatchUpdate(s.sheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: SheetTitle},
			}},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("creating trend sheet: %w", err)
	}

	header := make([]interface{}, len(model.SheetColumns))
	for i, col := range model.SheetColumns {
		header[i] = col
	}

	_, err = s.svc.Spreadsheets.Values.Update(s.sheetID, "'트렌드 분석'!A1", &sheets.ValueRange{
		Values: [][]interface{}{header},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("writing trend sheet header: %w", err)
	}

	return nil
}

func (s *SheetStore) Append(ctx context.Context, row model.TrendRow) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.svc.Spreadsheets.Values.Append(s.sheetID, "'트렌드 분석'!A1", &sheets.ValueRange{
		Values: [][]interface{}{row.Values()},
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("appending trend row: %w", err)
	}

	return nil
}

// Recent returns at most limit rows, newest first. Rows are appended in
// chronological order, so newest-first means reading from the bottom up.
func (s *SheetStore) Recent(ctx context.Context, limit int) ([]model.TrendSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.svc.Spreadsheets.Values.Get(s.sheetID, dataRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading trend rows: %w", err)
	}

	return summariesFromValues(res.Values, limit), nil
}

func summariesFromValues(values [][]interface{}, limit int) []model.TrendSummary {
	summaries := make([]model.TrendSummary, 0, limit)
	for i := len(values) - 1; i >= 0 && len(summaries) < limit; i-- {
		row := values[i]
		summaries = append(summaries, model.TrendSummary{
			CollectedAt:      cell(row, 0),
			TrendName:        cell(row, 4),
			PopularityScore:  cell(row, 5),
			TargetAudience:   cell(row, 6),
			ExpectedViews:    cell(row, 10),
			RevenuePotential: cell(row, 14),
			Keywords:         cell(row, 12),
		})
	}
	return summaries
}

func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return fmt.Sprint(row[i])
}
