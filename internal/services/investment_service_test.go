package services

import (
	"context"
	"testing"
	"time"

	"investwelth/internal/pagination"
	"investwelth/internal/testutil"
)

func TestInvestmentGetSummary(t *testing.T) {
	t.Run("empty_platform", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewInvestmentService(db)

		summary, err := svc.GetSummary(context.Background())
		testutil.AssertNoError(t, err)

		if summary.UserCount != 0 || summary.FundCount != 0 || summary.InvestmentCount != 0 {
			t.Errorf("expected zero counts, got %+v", summary)
		}
		if summary.TotalAUM != 0 || summary.AvgReturns != 0 {
			t.Errorf("expected zero totals, got %+v", summary)
		}
		if summary.TopPerformingFund != nil {
			t.Errorf("expected no top fund, got %+v", summary.TopPerformingFund)
		}
	})

	t.Run("totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewInvestmentService(db).(*investmentService)
		svc.now = func() time.Time { return fixedNow }

		u1 := testutil.CreateTestUser(t, db)
		u2 := testutil.CreateTestUser(t, db)
		a := testutil.CreateTestFund(t, db, "Axis Bluechip Fund", "Low", "45")
		b := testutil.CreateTestFund(t, db, "HDFC Top 100", "High", "60.5")
		testutil.CreateTestFund(t, db, "No NAV Fund", "High", "")
		testutil.CreateTestInvestment(t, db, u1.ID, a.ID, "1000", "10", testutil.Date(2024, 1, 1))
		testutil.CreateTestInvestment(t, db, u2.ID, b.ID, "3000", "20", testutil.Date(2024, 1, 1))

		summary, err := svc.GetSummary(context.Background())
		testutil.AssertNoError(t, err)

		if summary.UserCount != 2 || summary.FundCount != 3 || summary.InvestmentCount != 2 {
			t.Errorf("unexpected counts %+v", summary)
		}
		if summary.TotalAUM != 3000 {
			t.Errorf("expected AUM summed over funds (3000), got %v", summary.TotalAUM)
		}
		if summary.TotalInvested != 4000 {
			t.Errorf("expected invested 4000, got %v", summary.TotalInvested)
		}
		if summary.AvgReturns != 15 {
			t.Errorf("expected average returns 15, got %v", summary.AvgReturns)
		}
		if summary.TopPerformingFund == nil || summary.TopPerformingFund.ID != b.ID || summary.TopPerformingFund.NAV != 60.5 {
			t.Errorf("expected HDFC Top 100 as top fund, got %+v", summary.TopPerformingFund)
		}
		if !summary.LastUpdated.Equal(fixedNow) {
			t.Errorf("expected lastUpdated %s, got %s", fixedNow, summary.LastUpdated)
		}
	})

	t.Run("null_returns_count_as_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewInvestmentService(db)

		user := testutil.CreateTestUser(t, db)
		fund := testutil.CreateTestFund(t, db, "Axis Bluechip Fund", "Low", "45")
		testutil.CreateTestInvestment(t, db, user.ID, fund.ID, "1000", "10", testutil.Date(2024, 1, 1))
		testutil.CreateTestInvestment(t, db, user.ID, fund.ID, "1000", "", testutil.Date(2024, 2, 1))

		summary, err := svc.GetSummary(context.Background())
		testutil.AssertNoError(t, err)

		if summary.AvgReturns != 5 {
			t.Errorf("expected average returns 5 over both investments, got %v", summary.AvgReturns)
		}
	})
}

func TestGetUserInvestments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewInvestmentService(db)

	user := testutil.CreateTestUser(t, db)
	fund := testutil.CreateTestFund(t, db, "Axis Bluechip Fund", "Low", "45")
	testutil.CreateTestInvestment(t, db, user.ID, fund.ID, "1000", "12.5", testutil.Date(2024, 3, 5))
	testutil.CreateTestInvestment(t, db, user.ID, 999, "200", "0", testutil.Date(2024, 3, 6))

	views, err := svc.GetUserInvestments(context.Background(), user.ID)
	testutil.AssertNoError(t, err)

	if len(views) != 2 {
		t.Fatalf("expected 2 investments, got %d", len(views))
	}
	v := views[0]
	if v.FundName != "Axis Bluechip Fund" || v.FundType != "Equity" || v.RiskLevel != "Low" {
		t.Errorf("unexpected fund fields %+v", v)
	}
	if v.AmountInvested != 1000 || v.CurrentValue != 1125 || v.NAV != 45 {
		t.Errorf("unexpected amounts %+v", v)
	}
	if v.Returns != 12.5 || v.ReturnsAmount != 125 {
		t.Errorf("expected returns 12.5%% (125), got %v (%v)", v.Returns, v.ReturnsAmount)
	}
	if v.InvestmentDate != "2024-03-05" {
		t.Errorf("expected date 2024-03-05, got %s", v.InvestmentDate)
	}
	if views[1].FundName != "Unknown Fund" || views[1].FundType != "Unknown" || views[1].RiskLevel != "Unknown" {
		t.Errorf("expected unknown fund placeholders, got %+v", views[1])
	}

	none, err := svc.GetUserInvestments(context.Background(), user.ID+100)
	testutil.AssertNoError(t, err)
	if none == nil || len(none) != 0 {
		t.Errorf("expected an empty non-nil list, got %v", none)
	}
}

func TestGetInvestmentHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewInvestmentService(db)

	user := testutil.CreateTestUser(t, db)
	fund := testutil.CreateTestFund(t, db, "Axis Bluechip Fund", "Low", "45")
	for day := 1; day <= 5; day++ {
		testutil.CreateTestInvestment(t, db, user.ID, fund.ID, "100", "0", testutil.Date(2024, 1, day))
	}

	page, err := svc.GetInvestmentHistory(context.Background(), user.ID, pagination.PageRequest{Page: 1, PageSize: 2})
	testutil.AssertNoError(t, err)

	if page.TotalItems != 5 || page.TotalPages != 3 {
		t.Errorf("expected 5 items over 3 pages, got %d/%d", page.TotalItems, page.TotalPages)
	}
	if len(page.Data) != 2 || page.Data[0].InvestmentDate != "2024-01-05" || page.Data[1].InvestmentDate != "2024-01-04" {
		t.Errorf("expected newest first, got %+v", page.Data)
	}

	last, err := svc.GetInvestmentHistory(context.Background(), user.ID, pagination.PageRequest{Page: 3, PageSize: 2})
	testutil.AssertNoError(t, err)
	if len(last.Data) != 1 || last.Data[0].InvestmentDate != "2024-01-01" {
		t.Errorf("expected the oldest investment on the last page, got %+v", last.Data)
	}

	defaults, err := svc.GetInvestmentHistory(context.Background(), user.ID, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if defaults.Page != 1 || defaults.PageSize != 20 || len(defaults.Data) != 5 {
		t.Errorf("expected default paging, got page=%d size=%d len=%d", defaults.Page, defaults.PageSize, len(defaults.Data))
	}
}
