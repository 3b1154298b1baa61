package menu

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/atomicstack/loandesk/internal/domain"
	"github.com/atomicstack/loandesk/internal/format/money"
	"github.com/atomicstack/loandesk/internal/format/table"
	"github.com/atomicstack/loandesk/internal/listing"
)

const (
	dateLayout = "2006-01-02"
	barWidth   = 24
)

// BuildRegistry declares every dashboard section over ds.
func BuildRegistry(ds domain.Dataset) *Registry {
	return NewRegistry(
		&Section{ID: "borrowers", Label: "Borrowers", Icon: "☺", View: borrowersView(ds)},
		&Section{ID: "loans", Label: "Loans", Icon: "¤", View: loansView(ds)},
		&Section{ID: "repayments", Label: "Repayments", Icon: "↺", View: repaymentsView(ds)},
		&Section{ID: "collateral", Label: "Loan Collateral", Icon: "⌂", View: collateralView(ds)},
		&Section{ID: "savings", Label: "Savings", Icon: "Σ", View: savingsView(ds)},
		&Section{ID: "investors", Label: "Investors", Icon: "↗", View: investorsView(ds)},
		&Section{ID: "expenses", Label: "Expenses", Icon: "⊖", View: expensesView(ds)},
		&Section{ID: "charts", Label: "Charts", Icon: "▤", View: chartsView(ds)},
		&Section{ID: "reports", Label: "Reports", Icon: "≡", View: reportsView(ds)},
		&Section{ID: "accounting", Label: "Accounting", Icon: "⊞", View: accountingView(ds)},
		&Section{ID: "settings", Label: "Account Settings", Icon: "⚙", View: settingsView(ds)},
		&Section{ID: "branches", Label: "Branches", Icon: "⌘", View: branchesView(ds)},
		&Section{ID: "staff", Label: "Staff & Roles", Icon: "♙", View: staffView(ds)},
		&Section{ID: "calendar", Label: "Calendar", Icon: "▦", View: calendarView(ds)},
	)
}

func statusIs[T any](status func(T) string, want string) func(T) bool {
	return func(r T) bool { return strings.EqualFold(status(r), want) }
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func textField(key, label, placeholder string) listing.DialogField {
	return listing.DialogField{Key: key, Label: label, Placeholder: placeholder}
}

func choiceField(key, label string, options ...string) listing.DialogField {
	return listing.DialogField{Key: key, Label: label, Options: options}
}

func collectIDs[T any](records []T, id func(T) string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, id(r))
	}
	return out
}

func borrowersView(ds domain.Dataset) *listing.View[domain.Borrower] {
	status := func(b domain.Borrower) string { return b.Status }
	fields := []listing.DialogField{
		textField("name", "Full Name", "Enter full name"),
		textField("email", "Email", "Enter email address"),
		textField("phone", "Phone", "Enter phone number"),
		textField("address", "Address", "Enter address"),
		textField("creditScore", "Credit Score", "Enter credit score"),
		choiceField("status", "Status", "active", "pending", "defaulted"),
	}
	return &listing.View[domain.Borrower]{
		Records: ds.Borrowers,
		ID:      func(b domain.Borrower) string { return b.ID },
		Spec: listing.Spec[domain.Borrower]{
			SearchFields: []func(domain.Borrower) string{
				func(b domain.Borrower) string { return b.Name },
				func(b domain.Borrower) string { return b.Email },
				func(b domain.Borrower) string { return b.ID },
			},
			Category: status,
		},
		Summaries: []listing.Summary[domain.Borrower]{
			{Label: "Total Borrowers", Reduce: listing.Count[domain.Borrower]()},
			{Label: "Active", Tone: domain.ToneGood, Reduce: listing.CountWhere(statusIs(status, "Active"))},
			{Label: "Defaulted", Tone: domain.ToneBad, Reduce: listing.CountWhere(statusIs(status, "Defaulted"))},
			{Label: "Avg Credit Score", Kind: listing.KindNumber, Reduce: listing.Average(listing.Int(func(b domain.Borrower) int { return b.CreditScore }))},
		},
		Columns: []listing.Column[domain.Borrower]{
			{Title: "ID", Cell: func(b domain.Borrower) string { return b.ID }},
			{Title: "Name", Cell: func(b domain.Borrower) string { return b.Name }},
			{Title: "Email", Cell: func(b domain.Borrower) string { return b.Email }},
			{Title: "Phone", Cell: func(b domain.Borrower) string { return b.Phone }},
			{Title: "Credit", Align: table.AlignRight, Cell: func(b domain.Borrower) string { return strconv.Itoa(b.CreditScore) }},
			{Title: "Status", Cell: status},
			{Title: "Total Loans", Align: table.AlignRight, Cell: func(b domain.Borrower) string { return money.Format(b.TotalLoans) }},
			{Title: "Last Payment", Cell: func(b domain.Borrower) string { return b.LastPayment }},
		},
		Details: []listing.Attr[domain.Borrower]{
			{Label: "Borrower ID", Value: func(b domain.Borrower) string { return b.ID }},
			{Label: "Name", Value: func(b domain.Borrower) string { return b.Name }},
			{Label: "Email", Value: func(b domain.Borrower) string { return b.Email }},
			{Label: "Phone", Value: func(b domain.Borrower) string { return b.Phone }},
			{Label: "Address", Value: func(b domain.Borrower) string { return b.Address }},
			{Label: "Credit Score", Value: func(b domain.Borrower) string {
				return fmt.Sprintf("%d (%s)", b.CreditScore, creditGrade(b.CreditScore))
			}},
			{Label: "Status", Value: status},
			{Label: "Total Loans", Value: func(b domain.Borrower) string { return money.Format(b.TotalLoans) }},
			{Label: "Last Payment", Value: func(b domain.Borrower) string { return b.LastPayment }},
		},
		Tone: func(b domain.Borrower) domain.Tone { return domain.StatusTone(b.Status) },
		Add:  &listing.DialogSpec{Title: "Add New Borrower", Submit: "Add Borrower", Fields: fields},
		Edit: &listing.DialogSpec{Title: "Edit Borrower", Submit: "Save Changes", Fields: fields},
		Prefill: func(b domain.Borrower) map[string]string {
			return map[string]string{
				"name":        b.Name,
				"email":       b.Email,
				"phone":       b.Phone,
				"address":     b.Address,
				"creditScore": strconv.Itoa(b.CreditScore),
				"status":      listing.CategoryKey(b.Status),
			}
		},
	}
}

func creditGrade(score int) string {
	switch domain.CreditTone(score) {
	case domain.ToneGood:
		return "good"
	case domain.ToneWarn:
		return "fair"
	default:
		return "poor"
	}
}

func loansView(ds domain.Dataset) *listing.View[domain.Loan] {
	status := func(l domain.Loan) string { return l.Status }
	borrowerIDs := collectIDs(ds.Borrowers, func(b domain.Borrower) string { return b.ID })
	return &listing.View[domain.Loan]{
		Records: ds.Loans,
		ID:      func(l domain.Loan) string { return l.ID },
		Spec: listing.Spec[domain.Loan]{
			SearchFields: []func(domain.Loan) string{
				func(l domain.Loan) string { return l.BorrowerName },
				func(l domain.Loan) string { return l.ID },
				func(l domain.Loan) string { return l.BorrowerID },
			},
			Category: status,
		},
		Summaries: []listing.Summary[domain.Loan]{
			{Label: "Total Loans Amount", Kind: listing.KindMoney, Reduce: listing.Sum(func(l domain.Loan) decimal.Decimal { return l.Amount })},
			{Label: "Outstanding", Kind: listing.KindMoney, Reduce: listing.Sum(func(l domain.Loan) decimal.Decimal { return l.RemainingBalance })},
			{Label: "Active Loans", Tone: domain.ToneGood, Reduce: listing.CountWhere(statusIs(status, "Active"))},
			{Label: "Overdue Loans", Tone: domain.ToneBad, Reduce: listing.CountWhere(statusIs(status, "Overdue"))},
		},
		Columns: []listing.Column[domain.Loan]{
			{Title: "ID", Cell: func(l domain.Loan) string { return l.ID }},
			{Title: "Borrower", Cell: func(l domain.Loan) string { return l.BorrowerName }},
			{Title: "Amount", Align: table.AlignRight, Cell: func(l domain.Loan) string { return money.Format(l.Amount) }},
			{Title: "Rate", Align: table.AlignRight, Cell: func(l domain.Loan) string { return money.Rate(l.InterestRate) }},
			{Title: "Term", Align: table.AlignRight, Cell: func(l domain.Loan) string { return fmt.Sprintf("%d mo", l.Term) }},
			{Title: "Status", Cell: status},
			{Title: "Remaining", Align: table.AlignRight, Cell: func(l domain.Loan) string { return money.Format(l.RemainingBalance) }},
			{Title: "Monthly", Align: table.AlignRight, Cell: func(l domain.Loan) string { return money.Format(l.MonthlyPayment) }},
			{Title: "Next Payment", Cell: func(l domain.Loan) string { return l.NextPayment }},
		},
		Details: []listing.Attr[domain.Loan]{
			{Label: "Loan ID", Value: func(l domain.Loan) string { return l.ID }},
			{Label: "Borrower", Value: func(l domain.Loan) string { return fmt.Sprintf("%s (%s)", l.BorrowerName, l.BorrowerID) }},
			{Label: "Amount", Value: func(l domain.Loan) string { return money.Format(l.Amount) }},
			{Label: "Interest Rate", Value: func(l domain.Loan) string { return money.Rate(l.InterestRate) }},
			{Label: "Term", Value: func(l domain.Loan) string { return fmt.Sprintf("%d months", l.Term) }},
			{Label: "Status", Value: status},
			{Label: "Start Date", Value: func(l domain.Loan) string { return l.StartDate }},
			{Label: "Due Date", Value: func(l domain.Loan) string { return l.DueDate }},
			{Label: "Remaining Balance", Value: func(l domain.Loan) string { return money.Format(l.RemainingBalance) }},
			{Label: "Next Payment", Value: func(l domain.Loan) string { return l.NextPayment }},
			{Label: "Monthly Payment", Value: func(l domain.Loan) string { return money.Format(l.MonthlyPayment) }},
		},
		Tone: func(l domain.Loan) domain.Tone { return domain.StatusTone(l.Status) },
		Add: &listing.DialogSpec{
			Title:  "Create New Loan",
			Submit: "Create Loan",
			Fields: []listing.DialogField{
				choiceField("borrowerId", "Borrower", borrowerIDs...),
				textField("amount", "Loan Amount", "Enter amount"),
				textField("interestRate", "Interest Rate (%)", "Enter rate"),
				textField("term", "Term (months)", "Enter term"),
				textField("startDate", "Start Date", dateLayout),
			},
		},
	}
}

func repaymentsView(ds domain.Dataset) *listing.View[domain.Repayment] {
	status := func(r domain.Repayment) string { return r.Status }
	amount := func(r domain.Repayment) decimal.Decimal { return r.Amount }
	loanIDs := collectIDs(ds.Loans, func(l domain.Loan) string { return l.ID })
	return &listing.View[domain.Repayment]{
		Records: ds.Repayments,
		ID:      func(r domain.Repayment) string { return r.ID },
		Spec: listing.Spec[domain.Repayment]{
			SearchFields: []func(domain.Repayment) string{
				func(r domain.Repayment) string { return r.BorrowerName },
				func(r domain.Repayment) string { return r.LoanID },
				func(r domain.Repayment) string { return r.ID },
			},
			Category: status,
		},
		Summaries: []listing.Summary[domain.Repayment]{
			{Label: "Collected", Kind: listing.KindMoney, Tone: domain.ToneGood, Reduce: listing.SumWhere(statusIs(status, "Paid"), amount)},
			{Label: "Overdue", Kind: listing.KindMoney, Tone: domain.ToneBad, Reduce: listing.SumWhere(statusIs(status, "Overdue"), amount)},
			{Label: "Pending", Kind: listing.KindMoney, Tone: domain.ToneWarn, Reduce: listing.SumWhere(statusIs(status, "Pending"), amount)},
			{Label: "Collection Rate", Kind: listing.KindPercent, Reduce: listing.Ratio(
				listing.CountWhere(statusIs(status, "Paid")),
				listing.Count[domain.Repayment](),
			)},
		},
		Columns: []listing.Column[domain.Repayment]{
			{Title: "ID", Cell: func(r domain.Repayment) string { return r.ID }},
			{Title: "Loan", Cell: func(r domain.Repayment) string { return r.LoanID }},
			{Title: "Borrower", Cell: func(r domain.Repayment) string { return r.BorrowerName }},
			{Title: "Amount", Align: table.AlignRight, Cell: func(r domain.Repayment) string { return money.Format(r.Amount) }},
			{Title: "Principal", Align: table.AlignRight, Cell: func(r domain.Repayment) string { return money.Format(r.Principal) }},
			{Title: "Interest", Align: table.AlignRight, Cell: func(r domain.Repayment) string { return money.Format(r.Interest) }},
			{Title: "Due", Cell: func(r domain.Repayment) string { return r.DueDate }},
			{Title: "Paid", Cell: func(r domain.Repayment) string { return orDash(r.PaymentDate) }},
			{Title: "Status", Cell: status},
			{Title: "Method", Cell: func(r domain.Repayment) string { return orDash(r.Method) }},
		},
		Details: []listing.Attr[domain.Repayment]{
			{Label: "Payment ID", Value: func(r domain.Repayment) string { return r.ID }},
			{Label: "Loan", Value: func(r domain.Repayment) string { return r.LoanID }},
			{Label: "Borrower", Value: func(r domain.Repayment) string { return r.BorrowerName }},
			{Label: "Amount", Value: func(r domain.Repayment) string { return money.Format(r.Amount) }},
			{Label: "Principal", Value: func(r domain.Repayment) string { return money.Format(r.Principal) }},
			{Label: "Interest", Value: func(r domain.Repayment) string { return money.Format(r.Interest) }},
			{Label: "Due Date", Value: func(r domain.Repayment) string { return r.DueDate }},
			{Label: "Payment Date", Value: func(r domain.Repayment) string { return orDash(r.PaymentDate) }},
			{Label: "Status", Value: status},
			{Label: "Method", Value: func(r domain.Repayment) string { return orDash(r.Method) }},
			{Label: "Reference", Value: func(r domain.Repayment) string { return orDash(r.Reference) }},
		},
		Tone: func(r domain.Repayment) domain.Tone { return domain.StatusTone(r.Status) },
		Add: &listing.DialogSpec{
			Title:  "Record New Payment",
			Submit: "Record Payment",
			Fields: []listing.DialogField{
				choiceField("loanId", "Loan", loanIDs...),
				textField("amount", "Payment Amount", "Enter amount"),
				choiceField("method", "Payment Method", "bank-transfer", "direct-debit", "cash", "check"),
				textField("paymentDate", "Payment Date", dateLayout),
				textField("reference", "Reference", "Transaction reference"),
			},
		},
	}
}

func collateralView(ds domain.Dataset) *listing.View[domain.Collateral] {
	status := func(c domain.Collateral) string { return c.Status }
	loanIDs := collectIDs(ds.Loans, func(l domain.Loan) string { return l.ID })
	fields := []listing.DialogField{
		choiceField("loanId", "Associated Loan", loanIDs...),
		choiceField("type", "Collateral Type", "real-estate", "vehicle", "equipment", "jewelry", "other"),
		textField("description", "Description", "Describe the asset"),
		textField("location", "Location", "Enter location"),
		textField("estimatedValue", "Estimated Value", "Enter value"),
		choiceField("condition", "Condition", "excellent", "good", "fair", "poor"),
		textField("appraisalDate", "Appraisal Date", dateLayout),
	}
	return &listing.View[domain.Collateral]{
		Records: ds.Collateral,
		ID:      func(c domain.Collateral) string { return c.ID },
		Spec: listing.Spec[domain.Collateral]{
			SearchFields: []func(domain.Collateral) string{
				func(c domain.Collateral) string { return c.BorrowerName },
				func(c domain.Collateral) string { return c.LoanID },
				func(c domain.Collateral) string { return c.Description },
				func(c domain.Collateral) string { return c.ID },
			},
			Category: func(c domain.Collateral) string { return c.Type },
		},
		Summaries: []listing.Summary[domain.Collateral]{
			{Label: "Total Value", Kind: listing.KindMoney, Reduce: listing.Sum(func(c domain.Collateral) decimal.Decimal { return c.CurrentValue })},
			{Label: "Active", Tone: domain.ToneGood, Reduce: listing.CountWhere(statusIs(status, "Active"))},
			{Label: "Under Review", Tone: domain.ToneWarn, Reduce: listing.CountWhere(statusIs(status, "Under Review"))},
			{Label: "Expired Insurance", Tone: domain.ToneBad, Reduce: listing.CountWhere(statusIs(func(c domain.Collateral) string { return c.InsuranceStatus }, "Expired"))},
		},
		Columns: []listing.Column[domain.Collateral]{
			{Title: "ID", Cell: func(c domain.Collateral) string { return c.ID }},
			{Title: "Loan", Cell: func(c domain.Collateral) string { return c.LoanID }},
			{Title: "Borrower", Cell: func(c domain.Collateral) string { return c.BorrowerName }},
			{Title: "Type", Cell: func(c domain.Collateral) string { return c.Type }},
			{Title: "Description", Cell: func(c domain.Collateral) string { return c.Description }},
			{Title: "Estimated", Align: table.AlignRight, Cell: func(c domain.Collateral) string { return money.Format(c.EstimatedValue) }},
			{Title: "Current", Align: table.AlignRight, Cell: func(c domain.Collateral) string { return money.Format(c.CurrentValue) }},
			{Title: "Status", Cell: status},
			{Title: "Insurance", Cell: func(c domain.Collateral) string { return c.InsuranceStatus }},
		},
		Details: []listing.Attr[domain.Collateral]{
			{Label: "Collateral ID", Value: func(c domain.Collateral) string { return c.ID }},
			{Label: "Loan", Value: func(c domain.Collateral) string { return c.LoanID }},
			{Label: "Borrower", Value: func(c domain.Collateral) string { return c.BorrowerName }},
			{Label: "Type", Value: func(c domain.Collateral) string { return c.Type }},
			{Label: "Description", Value: func(c domain.Collateral) string { return c.Description }},
			{Label: "Location", Value: func(c domain.Collateral) string { return c.Location }},
			{Label: "Estimated Value", Value: func(c domain.Collateral) string { return money.Format(c.EstimatedValue) }},
			{Label: "Current Value", Value: func(c domain.Collateral) string { return money.Format(c.CurrentValue) }},
			{Label: "Value Change", Value: func(c domain.Collateral) string {
				return money.Format(c.CurrentValue.Sub(c.EstimatedValue))
			}},
			{Label: "Status", Value: status},
			{Label: "Condition", Value: func(c domain.Collateral) string { return c.Condition }},
			{Label: "Appraisal Date", Value: func(c domain.Collateral) string { return c.AppraisalDate }},
			{Label: "Insurance", Value: func(c domain.Collateral) string { return c.InsuranceStatus }},
		},
		Tone: func(c domain.Collateral) domain.Tone { return domain.StatusTone(c.Status) },
		Add:  &listing.DialogSpec{Title: "Add New Collateral", Submit: "Add Collateral", Fields: fields},
		Edit: &listing.DialogSpec{Title: "Edit Collateral", Submit: "Save Changes", Fields: fields},
		Prefill: func(c domain.Collateral) map[string]string {
			return map[string]string{
				"loanId":         c.LoanID,
				"type":           listing.CategoryKey(c.Type),
				"description":    c.Description,
				"location":       c.Location,
				"estimatedValue": c.EstimatedValue.String(),
				"condition":      listing.CategoryKey(c.Condition),
				"appraisalDate":  c.AppraisalDate,
			}
		},
	}
}

func savingsView(ds domain.Dataset) *listing.View[domain.SavingsAccount] {
	status := func(s domain.SavingsAccount) string { return s.Status }
	customerIDs := collectIDs(ds.Savings, func(s domain.SavingsAccount) string { return s.CustomerID })
	return &listing.View[domain.SavingsAccount]{
		Records: ds.Savings,
		ID:      func(s domain.SavingsAccount) string { return s.ID },
		Spec: listing.Spec[domain.SavingsAccount]{
			SearchFields: []func(domain.SavingsAccount) string{
				func(s domain.SavingsAccount) string { return s.CustomerName },
				func(s domain.SavingsAccount) string { return s.AccountNumber },
				func(s domain.SavingsAccount) string { return s.CustomerID },
			},
			Category: func(s domain.SavingsAccount) string { return s.AccountType },
		},
		Summaries: []listing.Summary[domain.SavingsAccount]{
			{Label: "Total Savings", Kind: listing.KindMoney, Reduce: listing.Sum(func(s domain.SavingsAccount) decimal.Decimal { return s.CurrentBalance })},
			{Label: "Active Accounts", Tone: domain.ToneGood, Reduce: listing.CountWhere(statusIs(status, "Active"))},
			{Label: "Avg Interest", Kind: listing.KindPercent, Reduce: listing.Average(func(s domain.SavingsAccount) decimal.Decimal { return s.InterestRate })},
			{Label: "Total Goals", Kind: listing.KindMoney, Reduce: listing.Sum(func(s domain.SavingsAccount) decimal.Decimal { return s.Goal })},
		},
		Columns: []listing.Column[domain.SavingsAccount]{
			{Title: "Account", Cell: func(s domain.SavingsAccount) string { return s.AccountNumber }},
			{Title: "Customer", Cell: func(s domain.SavingsAccount) string { return s.CustomerName }},
			{Title: "Type", Cell: func(s domain.SavingsAccount) string { return s.AccountType }},
			{Title: "Balance", Align: table.AlignRight, Cell: func(s domain.SavingsAccount) string { return money.Format(s.CurrentBalance) }},
			{Title: "Rate", Align: table.AlignRight, Cell: func(s domain.SavingsAccount) string { return money.Rate(s.InterestRate) }},
			{Title: "Goal", Align: table.AlignRight, Cell: func(s domain.SavingsAccount) string { return money.Format(s.Goal) }},
			{Title: "Progress", Align: table.AlignRight, Cell: func(s domain.SavingsAccount) string { return money.Percent(s.GoalProgress()) }},
			{Title: "Status", Cell: status},
		},
		Details: []listing.Attr[domain.SavingsAccount]{
			{Label: "Account Number", Value: func(s domain.SavingsAccount) string { return s.AccountNumber }},
			{Label: "Customer", Value: func(s domain.SavingsAccount) string { return fmt.Sprintf("%s (%s)", s.CustomerName, s.CustomerID) }},
			{Label: "Account Type", Value: func(s domain.SavingsAccount) string { return s.AccountType }},
			{Label: "Current Balance", Value: func(s domain.SavingsAccount) string { return money.Format(s.CurrentBalance) }},
			{Label: "Interest Rate", Value: func(s domain.SavingsAccount) string { return money.Rate(s.InterestRate) }},
			{Label: "Minimum Balance", Value: func(s domain.SavingsAccount) string { return money.Format(s.MinimumBalance) }},
			{Label: "Savings Goal", Value: func(s domain.SavingsAccount) string { return money.Format(s.Goal) }},
			{Label: "Goal Progress", Value: func(s domain.SavingsAccount) string {
				return money.Percent(s.GoalProgress()) + " " + bar(s.GoalProgress(), decimal.NewFromInt(100), barWidth)
			}},
			{Label: "Monthly Deposit", Value: func(s domain.SavingsAccount) string { return money.Format(s.MonthlyDeposit) }},
			{Label: "Opened", Value: func(s domain.SavingsAccount) string { return s.OpenDate }},
			{Label: "Last Transaction", Value: func(s domain.SavingsAccount) string { return s.LastTransaction }},
			{Label: "Status", Value: status},
		},
		Tone: func(s domain.SavingsAccount) domain.Tone { return domain.StatusTone(s.Status) },
		Add: &listing.DialogSpec{
			Title:  "Open New Savings Account",
			Submit: "Open Account",
			Fields: []listing.DialogField{
				choiceField("customerId", "Customer", customerIDs...),
				choiceField("accountType", "Account Type", "regular", "high-yield", "goal", "premium"),
				textField("initialDeposit", "Initial Deposit", "Enter amount"),
				textField("goal", "Savings Goal", "Enter goal amount"),
				textField("monthlyDeposit", "Monthly Deposit Target", "Enter amount"),
			},
		},
	}
}

func investorsView(ds domain.Dataset) *listing.View[domain.Investor] {
	status := func(i domain.Investor) string { return i.Status }
	fields := []listing.DialogField{
		textField("name", "Investor Name", "Enter name"),
		choiceField("type", "Investor Type", "individual", "institution"),
		textField("totalInvestment", "Investment Amount", "Enter amount"),
		choiceField("riskProfile", "Risk Profile", "conservative", "moderate", "aggressive"),
	}
	return &listing.View[domain.Investor]{
		Records: ds.Investors,
		ID:      func(i domain.Investor) string { return i.ID },
		Spec: listing.Spec[domain.Investor]{
			SearchFields: []func(domain.Investor) string{
				func(i domain.Investor) string { return i.Name },
				func(i domain.Investor) string { return i.ID },
				func(i domain.Investor) string { return i.RiskProfile },
			},
			Category: func(i domain.Investor) string { return i.Type },
		},
		Summaries: []listing.Summary[domain.Investor]{
			{Label: "Total Investors", Reduce: listing.Count[domain.Investor]()},
			{Label: "Total Capital", Kind: listing.KindCompactMoney, Reduce: listing.Sum(func(i domain.Investor) decimal.Decimal { return i.TotalInvestment })},
			{Label: "Avg Return", Kind: listing.KindPercent, Tone: domain.ToneGood, Reduce: listing.Average(func(i domain.Investor) decimal.Decimal { return i.CurrentReturn })},
			{Label: "Portfolio Loans", Kind: listing.KindNumber, Reduce: listing.Sum(listing.Int(func(i domain.Investor) int { return i.PortfolioLoans }))},
		},
		Columns: []listing.Column[domain.Investor]{
			{Title: "ID", Cell: func(i domain.Investor) string { return i.ID }},
			{Title: "Name", Cell: func(i domain.Investor) string { return i.Name }},
			{Title: "Type", Cell: func(i domain.Investor) string { return i.Type }},
			{Title: "Investment", Align: table.AlignRight, Cell: func(i domain.Investor) string { return money.Format(i.TotalInvestment) }},
			{Title: "Return", Align: table.AlignRight, Cell: func(i domain.Investor) string { return money.Rate(i.CurrentReturn) }},
			{Title: "Loans", Align: table.AlignRight, Cell: func(i domain.Investor) string { return strconv.Itoa(i.PortfolioLoans) }},
			{Title: "Risk", Cell: func(i domain.Investor) string { return i.RiskProfile }},
			{Title: "Joined", Cell: func(i domain.Investor) string { return i.JoinDate }},
			{Title: "Status", Cell: status},
		},
		Details: []listing.Attr[domain.Investor]{
			{Label: "Investor ID", Value: func(i domain.Investor) string { return i.ID }},
			{Label: "Name", Value: func(i domain.Investor) string { return i.Name }},
			{Label: "Type", Value: func(i domain.Investor) string { return i.Type }},
			{Label: "Total Investment", Value: func(i domain.Investor) string { return money.Format(i.TotalInvestment) }},
			{Label: "Current Return", Value: func(i domain.Investor) string { return money.Rate(i.CurrentReturn) }},
			{Label: "Portfolio Loans", Value: func(i domain.Investor) string { return strconv.Itoa(i.PortfolioLoans) }},
			{Label: "Risk Profile", Value: func(i domain.Investor) string { return i.RiskProfile }},
			{Label: "Joined", Value: func(i domain.Investor) string { return i.JoinDate }},
			{Label: "Status", Value: status},
		},
		Tone: func(i domain.Investor) domain.Tone { return domain.StatusTone(i.Status) },
		Add:  &listing.DialogSpec{Title: "Add New Investor", Submit: "Add Investor", Fields: fields},
		Edit: &listing.DialogSpec{Title: "Edit Investor", Submit: "Save Changes", Fields: fields},
		Prefill: func(i domain.Investor) map[string]string {
			return map[string]string{
				"name":            i.Name,
				"type":            listing.CategoryKey(i.Type),
				"totalInvestment": i.TotalInvestment.String(),
				"riskProfile":     listing.CategoryKey(i.RiskProfile),
			}
		},
	}
}

func expensesView(ds domain.Dataset) *listing.View[domain.Expense] {
	status := func(e domain.Expense) string { return e.Status }
	amount := func(e domain.Expense) decimal.Decimal { return e.Amount }
	return &listing.View[domain.Expense]{
		Records: ds.Expenses,
		ID:      func(e domain.Expense) string { return e.ID },
		Spec: listing.Spec[domain.Expense]{
			SearchFields: []func(domain.Expense) string{
				func(e domain.Expense) string { return e.Description },
				func(e domain.Expense) string { return e.Vendor },
				func(e domain.Expense) string { return e.Reference },
				func(e domain.Expense) string { return e.ID },
			},
			Category: func(e domain.Expense) string { return e.Category },
		},
		Summaries: []listing.Summary[domain.Expense]{
			{Label: "Total Expenses", Kind: listing.KindMoney, Reduce: listing.Sum(amount)},
			{Label: "Paid", Kind: listing.KindMoney, Tone: domain.ToneGood, Reduce: listing.SumWhere(statusIs(status, "Paid"), amount)},
			{Label: "Pending", Kind: listing.KindMoney, Tone: domain.ToneWarn, Reduce: listing.SumWhere(statusIs(status, "Pending"), amount)},
			{Label: "Categories", Reduce: listing.Distinct(func(e domain.Expense) string { return e.Category })},
		},
		Columns: []listing.Column[domain.Expense]{
			{Title: "ID", Cell: func(e domain.Expense) string { return e.ID }},
			{Title: "Description", Cell: func(e domain.Expense) string { return e.Description }},
			{Title: "Category", Cell: func(e domain.Expense) string { return e.Category }},
			{Title: "Amount", Align: table.AlignRight, Cell: func(e domain.Expense) string { return money.Format(e.Amount) }},
			{Title: "Date", Cell: func(e domain.Expense) string { return e.Date }},
			{Title: "Vendor", Cell: func(e domain.Expense) string { return e.Vendor }},
			{Title: "Status", Cell: status},
		},
		Details: []listing.Attr[domain.Expense]{
			{Label: "Expense ID", Value: func(e domain.Expense) string { return e.ID }},
			{Label: "Description", Value: func(e domain.Expense) string { return e.Description }},
			{Label: "Category", Value: func(e domain.Expense) string { return e.Category }},
			{Label: "Amount", Value: func(e domain.Expense) string { return money.Format(e.Amount) }},
			{Label: "Date", Value: func(e domain.Expense) string { return e.Date }},
			{Label: "Vendor", Value: func(e domain.Expense) string { return e.Vendor }},
			{Label: "Status", Value: status},
			{Label: "Reference", Value: func(e domain.Expense) string { return e.Reference }},
		},
		Tone: func(e domain.Expense) domain.Tone { return domain.StatusTone(e.Status) },
		Add: &listing.DialogSpec{
			Title:  "Add New Expense",
			Submit: "Add Expense",
			Fields: []listing.DialogField{
				textField("description", "Description", "What was purchased"),
				choiceField("category", "Category", "rent", "technology", "utilities", "salaries", "other"),
				textField("amount", "Amount", "Enter amount"),
				textField("date", "Date", dateLayout),
				textField("vendor", "Vendor", "Enter vendor"),
			},
		},
	}
}

func chartsView(ds domain.Dataset) *listing.View[domain.ChartPoint] {
	series := func(p domain.ChartPoint) string { return p.Series }
	value := func(p domain.ChartPoint) decimal.Decimal { return p.Value }
	peaks := make(map[string]decimal.Decimal)
	for _, p := range ds.Charts {
		if cur, ok := peaks[p.Series]; !ok || p.Value.GreaterThan(cur) {
			peaks[p.Series] = p.Value
		}
	}
	return &listing.View[domain.ChartPoint]{
		Records: ds.Charts,
		ID:      func(p domain.ChartPoint) string { return p.ID() },
		Spec: listing.Spec[domain.ChartPoint]{
			SearchFields: []func(domain.ChartPoint) string{series, func(p domain.ChartPoint) string { return p.Label }},
			Category:     series,
		},
		Summaries: []listing.Summary[domain.ChartPoint]{
			{Label: "Disbursed", Kind: listing.KindCompactMoney, Reduce: listing.SumWhere(statusIs(series, "Disbursed"), value)},
			{Label: "Collected", Kind: listing.KindCompactMoney, Tone: domain.ToneGood, Reduce: listing.SumWhere(statusIs(series, "Collected"), value)},
			{Label: "Revenue", Kind: listing.KindCompactMoney, Reduce: listing.SumWhere(statusIs(series, "Revenue"), value)},
			{Label: "Profit", Kind: listing.KindCompactMoney, Tone: domain.ToneGood, Reduce: listing.SumWhere(statusIs(series, "Profit"), value)},
		},
		Columns: []listing.Column[domain.ChartPoint]{
			{Title: "Series", Cell: series},
			{Title: "Label", Cell: func(p domain.ChartPoint) string { return p.Label }},
			{Title: "Value", Align: table.AlignRight, Cell: chartValue},
			{Title: "", Cell: func(p domain.ChartPoint) string { return bar(p.Value, peaks[p.Series], barWidth) }},
		},
		Details: []listing.Attr[domain.ChartPoint]{
			{Label: "Series", Value: series},
			{Label: "Label", Value: func(p domain.ChartPoint) string { return p.Label }},
			{Label: "Value", Value: chartValue},
			{Label: "Series Peak", Value: func(p domain.ChartPoint) string {
				return chartValue(domain.ChartPoint{Value: peaks[p.Series], Unit: p.Unit})
			}},
		},
	}
}

func chartValue(p domain.ChartPoint) string {
	switch p.Unit {
	case "money":
		return money.Format(p.Value)
	case "percent":
		return p.Value.String() + "%"
	default:
		return money.Number(p.Value)
	}
}

// bar draws value as a share of peak using block characters.
func bar(value, peak decimal.Decimal, width int) string {
	if !peak.IsPositive() || width <= 0 {
		return ""
	}
	filled := int(value.Div(peak).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func reportsView(ds domain.Dataset) *listing.View[domain.Report] {
	status := func(r domain.Report) string { return r.Status }
	return &listing.View[domain.Report]{
		Records: ds.Reports,
		ID:      func(r domain.Report) string { return r.ID },
		Spec: listing.Spec[domain.Report]{
			SearchFields: []func(domain.Report) string{
				func(r domain.Report) string { return r.Name },
				func(r domain.Report) string { return r.Period },
				func(r domain.Report) string { return r.ID },
			},
			Category: func(r domain.Report) string { return r.Type },
		},
		Summaries: []listing.Summary[domain.Report]{
			{Label: "Total Reports", Reduce: listing.Count[domain.Report]()},
			{Label: "Completed", Tone: domain.ToneGood, Reduce: listing.CountWhere(statusIs(status, "Completed"))},
			{Label: "Processing", Tone: domain.ToneWarn, Reduce: listing.CountWhere(statusIs(status, "Processing"))},
			{Label: "Report Types", Reduce: listing.Distinct(func(r domain.Report) string { return r.Type })},
		},
		Columns: []listing.Column[domain.Report]{
			{Title: "ID", Cell: func(r domain.Report) string { return r.ID }},
			{Title: "Name", Cell: func(r domain.Report) string { return r.Name }},
			{Title: "Type", Cell: func(r domain.Report) string { return r.Type }},
			{Title: "Generated", Cell: func(r domain.Report) string { return r.GeneratedDate }},
			{Title: "Period", Cell: func(r domain.Report) string { return r.Period }},
			{Title: "Status", Cell: status},
			{Title: "Size", Align: table.AlignRight, Cell: func(r domain.Report) string { return orDash(r.Size) }},
		},
		Details: []listing.Attr[domain.Report]{
			{Label: "Report ID", Value: func(r domain.Report) string { return r.ID }},
			{Label: "Name", Value: func(r domain.Report) string { return r.Name }},
			{Label: "Type", Value: func(r domain.Report) string { return r.Type }},
			{Label: "Generated", Value: func(r domain.Report) string { return r.GeneratedDate }},
			{Label: "Period", Value: func(r domain.Report) string { return r.Period }},
			{Label: "Status", Value: status},
			{Label: "Size", Value: func(r domain.Report) string { return orDash(r.Size) }},
		},
		Tone: func(r domain.Report) domain.Tone { return domain.StatusTone(r.Status) },
		Add: &listing.DialogSpec{
			Title:  "Generate New Report",
			Submit: "Generate",
			Fields: []listing.DialogField{
				choiceField("type", "Report Type", "portfolio", "performance", "risk", "credit", "compliance"),
				choiceField("format", "Format", "pdf", "excel", "csv"),
			},
		},
	}
}

func accountingView(ds domain.Dataset) *listing.View[domain.LedgerAccount] {
	kind := func(a domain.LedgerAccount) string { return a.Type }
	balance := func(a domain.LedgerAccount) decimal.Decimal { return a.Balance }
	incomeStatement := func(a domain.LedgerAccount) bool {
		return strings.EqualFold(a.Type, "Revenue") || strings.EqualFold(a.Type, "Expense")
	}
	return &listing.View[domain.LedgerAccount]{
		Records: ds.Ledger,
		ID:      func(a domain.LedgerAccount) string { return a.Account },
		Spec: listing.Spec[domain.LedgerAccount]{
			SearchFields: []func(domain.LedgerAccount) string{func(a domain.LedgerAccount) string { return a.Account }, kind},
			Category:     kind,
		},
		Summaries: []listing.Summary[domain.LedgerAccount]{
			{Label: "Total Assets", Kind: listing.KindMoney, Reduce: listing.SumWhere(statusIs(kind, "Asset"), balance)},
			{Label: "Revenue", Kind: listing.KindMoney, Tone: domain.ToneGood, Reduce: listing.SumWhere(statusIs(kind, "Revenue"), balance)},
			{Label: "Expenses", Kind: listing.KindMoney, Tone: domain.ToneBad, Reduce: listing.SumWhere(statusIs(kind, "Expense"), balance)},
			{Label: "Net Income", Kind: listing.KindMoney, Tone: domain.ToneGood, Reduce: listing.SumWhere(incomeStatement, balance)},
		},
		Columns: []listing.Column[domain.LedgerAccount]{
			{Title: "Account", Cell: func(a domain.LedgerAccount) string { return a.Account }},
			{Title: "Type", Cell: kind},
			{Title: "Balance", Align: table.AlignRight, Cell: func(a domain.LedgerAccount) string { return money.Format(a.Balance) }},
			{Title: "Change", Align: table.AlignRight, Cell: func(a domain.LedgerAccount) string { return a.Change }},
		},
		Details: []listing.Attr[domain.LedgerAccount]{
			{Label: "Account", Value: func(a domain.LedgerAccount) string { return a.Account }},
			{Label: "Type", Value: kind},
			{Label: "Balance", Value: func(a domain.LedgerAccount) string { return money.Format(a.Balance) }},
			{Label: "Change", Value: func(a domain.LedgerAccount) string { return a.Change }},
		},
		Tone: func(a domain.LedgerAccount) domain.Tone { return domain.SignTone(a.Change) },
	}
}

func settingsView(ds domain.Dataset) *listing.View[domain.Setting] {
	group := func(s domain.Setting) string { return s.Group }
	toggle := func(s domain.Setting) bool { return s.Kind == domain.SettingToggle }
	return &listing.View[domain.Setting]{
		Records: ds.Settings,
		ID:      func(s domain.Setting) string { return s.Key },
		Spec: listing.Spec[domain.Setting]{
			SearchFields: []func(domain.Setting) string{
				func(s domain.Setting) string { return s.Label },
				func(s domain.Setting) string { return s.Description },
				group,
			},
			Category: group,
		},
		Summaries: []listing.Summary[domain.Setting]{
			{Label: "Settings", Reduce: listing.Count[domain.Setting]()},
			{Label: "Enabled", Tone: domain.ToneGood, Reduce: listing.CountWhere(domain.Setting.Enabled)},
			{Label: "Disabled", Tone: domain.ToneWarn, Reduce: listing.CountWhere(func(s domain.Setting) bool { return toggle(s) && !s.Enabled() })},
			{Label: "Groups", Reduce: listing.Distinct(group)},
		},
		Columns: []listing.Column[domain.Setting]{
			{Title: "Group", Cell: group},
			{Title: "Setting", Cell: func(s domain.Setting) string { return s.Label }},
			{Title: "Value", Cell: domain.Setting.Display},
			{Title: "Description", Cell: func(s domain.Setting) string { return s.Description }},
		},
		Details: []listing.Attr[domain.Setting]{
			{Label: "Group", Value: group},
			{Label: "Setting", Value: func(s domain.Setting) string { return s.Label }},
			{Label: "Description", Value: func(s domain.Setting) string { return orDash(s.Description) }},
			{Label: "Value", Value: domain.Setting.Display},
		},
		Tone: func(s domain.Setting) domain.Tone {
			if !toggle(s) {
				return domain.ToneNeutral
			}
			if s.Enabled() {
				return domain.ToneGood
			}
			return domain.ToneWarn
		},
		Edit: &listing.DialogSpec{
			Title:  "Edit Setting",
			Submit: "Save Settings",
			Fields: []listing.DialogField{textField("value", "Value", "New value")},
		},
		Prefill: func(s domain.Setting) map[string]string {
			return map[string]string{"value": s.Value}
		},
	}
}

func branchesView(ds domain.Dataset) *listing.View[domain.Branch] {
	status := func(b domain.Branch) string { return b.Status }
	fields := []listing.DialogField{
		textField("name", "Branch Name", "Enter branch name"),
		textField("address", "Address", "Enter address"),
		textField("manager", "Manager", "Enter manager name"),
	}
	return &listing.View[domain.Branch]{
		Records: ds.Branches,
		ID:      func(b domain.Branch) string { return b.ID },
		Spec: listing.Spec[domain.Branch]{
			SearchFields: []func(domain.Branch) string{
				func(b domain.Branch) string { return b.Name },
				func(b domain.Branch) string { return b.Manager },
				func(b domain.Branch) string { return b.Address },
				func(b domain.Branch) string { return b.ID },
			},
		},
		Summaries: []listing.Summary[domain.Branch]{
			{Label: "Total Branches", Reduce: listing.Count[domain.Branch]()},
			{Label: "Total Staff", Kind: listing.KindNumber, Reduce: listing.Sum(listing.Int(func(b domain.Branch) int { return b.Staff }))},
			{Label: "Active Loans", Kind: listing.KindNumber, Reduce: listing.Sum(listing.Int(func(b domain.Branch) int { return b.Loans }))},
			{Label: "Total Revenue", Kind: listing.KindMoney, Tone: domain.ToneGood, Reduce: listing.Sum(func(b domain.Branch) decimal.Decimal { return b.Revenue })},
		},
		Columns: []listing.Column[domain.Branch]{
			{Title: "ID", Cell: func(b domain.Branch) string { return b.ID }},
			{Title: "Branch", Cell: func(b domain.Branch) string { return b.Name }},
			{Title: "Manager", Cell: func(b domain.Branch) string { return b.Manager }},
			{Title: "Staff", Align: table.AlignRight, Cell: func(b domain.Branch) string { return strconv.Itoa(b.Staff) }},
			{Title: "Loans", Align: table.AlignRight, Cell: func(b domain.Branch) string { return strconv.Itoa(b.Loans) }},
			{Title: "Revenue", Align: table.AlignRight, Cell: func(b domain.Branch) string { return money.Format(b.Revenue) }},
			{Title: "Status", Cell: status},
		},
		Details: []listing.Attr[domain.Branch]{
			{Label: "Branch ID", Value: func(b domain.Branch) string { return b.ID }},
			{Label: "Name", Value: func(b domain.Branch) string { return b.Name }},
			{Label: "Address", Value: func(b domain.Branch) string { return b.Address }},
			{Label: "Manager", Value: func(b domain.Branch) string { return b.Manager }},
			{Label: "Staff", Value: func(b domain.Branch) string { return strconv.Itoa(b.Staff) }},
			{Label: "Loans", Value: func(b domain.Branch) string { return strconv.Itoa(b.Loans) }},
			{Label: "Revenue", Value: func(b domain.Branch) string { return money.Format(b.Revenue) }},
			{Label: "Status", Value: status},
		},
		Tone: func(b domain.Branch) domain.Tone { return domain.StatusTone(b.Status) },
		Add:  &listing.DialogSpec{Title: "Add New Branch", Submit: "Add Branch", Fields: fields},
		Edit: &listing.DialogSpec{Title: "Edit Branch", Submit: "Save Changes", Fields: fields},
		Prefill: func(b domain.Branch) map[string]string {
			return map[string]string{"name": b.Name, "address": b.Address, "manager": b.Manager}
		},
	}
}

func staffView(ds domain.Dataset) *listing.View[domain.StaffMember] {
	status := func(s domain.StaffMember) string { return s.Status }
	department := func(s domain.StaffMember) string { return s.Department }
	branches := collectIDs(ds.Branches, func(b domain.Branch) string { return b.Name })
	fields := []listing.DialogField{
		textField("name", "Full Name", "Enter full name"),
		textField("email", "Email", "Enter email address"),
		choiceField("role", "Role", "branch-manager", "loan-officer", "credit-analyst", "accountant"),
		choiceField("department", "Department", "operations", "lending", "risk", "finance"),
		choiceField("branch", "Branch", branches...),
	}
	return &listing.View[domain.StaffMember]{
		Records: ds.Staff,
		ID:      func(s domain.StaffMember) string { return s.ID },
		Spec: listing.Spec[domain.StaffMember]{
			SearchFields: []func(domain.StaffMember) string{
				func(s domain.StaffMember) string { return s.Name },
				func(s domain.StaffMember) string { return s.Email },
				func(s domain.StaffMember) string { return s.Role },
				func(s domain.StaffMember) string { return s.ID },
			},
			Category: department,
		},
		Summaries: []listing.Summary[domain.StaffMember]{
			{Label: "Total Staff", Reduce: listing.Count[domain.StaffMember]()},
			{Label: "Active Users", Tone: domain.ToneGood, Reduce: listing.CountWhere(statusIs(status, "Active"))},
			{Label: "Departments", Reduce: listing.Distinct(department)},
			{Label: "Unique Roles", Reduce: listing.Distinct(func(s domain.StaffMember) string { return s.Role })},
		},
		Columns: []listing.Column[domain.StaffMember]{
			{Title: "ID", Cell: func(s domain.StaffMember) string { return s.ID }},
			{Title: "Name", Cell: func(s domain.StaffMember) string { return s.Name }},
			{Title: "Role", Cell: func(s domain.StaffMember) string { return s.Role }},
			{Title: "Department", Cell: department},
			{Title: "Branch", Cell: func(s domain.StaffMember) string { return s.Branch }},
			{Title: "Status", Cell: status},
			{Title: "Last Active", Cell: func(s domain.StaffMember) string { return s.LastActive }},
		},
		Details: []listing.Attr[domain.StaffMember]{
			{Label: "Staff ID", Value: func(s domain.StaffMember) string { return s.ID }},
			{Label: "Name", Value: func(s domain.StaffMember) string { return s.Name }},
			{Label: "Email", Value: func(s domain.StaffMember) string { return s.Email }},
			{Label: "Role", Value: func(s domain.StaffMember) string { return s.Role }},
			{Label: "Department", Value: department},
			{Label: "Branch", Value: func(s domain.StaffMember) string { return s.Branch }},
			{Label: "Permissions", Value: func(s domain.StaffMember) string { return strings.Join(s.Permissions, ", ") }},
			{Label: "Status", Value: status},
			{Label: "Last Active", Value: func(s domain.StaffMember) string { return s.LastActive }},
		},
		Tone: func(s domain.StaffMember) domain.Tone { return domain.StatusTone(s.Status) },
		Add:  &listing.DialogSpec{Title: "Add Staff Member", Submit: "Add Staff", Fields: fields},
		Edit: &listing.DialogSpec{Title: "Edit Staff Member", Submit: "Save Changes", Fields: fields},
		Prefill: func(s domain.StaffMember) map[string]string {
			return map[string]string{
				"name":       s.Name,
				"email":      s.Email,
				"role":       listing.CategoryKey(s.Role),
				"department": listing.CategoryKey(s.Department),
				"branch":     s.Branch,
			}
		},
	}
}

func calendarView(ds domain.Dataset) *listing.View[domain.CalendarEvent] {
	today := ds.Today
	if today == "" {
		today = time.Now().Format(dateLayout)
	}
	kind := func(e domain.CalendarEvent) string { return e.Type }
	return &listing.View[domain.CalendarEvent]{
		Records: ds.Calendar,
		ID:      func(e domain.CalendarEvent) string { return e.ID },
		Spec: listing.Spec[domain.CalendarEvent]{
			SearchFields: []func(domain.CalendarEvent) string{
				func(e domain.CalendarEvent) string { return e.Title },
				func(e domain.CalendarEvent) string { return e.Borrower },
				func(e domain.CalendarEvent) string { return e.Location },
				func(e domain.CalendarEvent) string { return strings.Join(e.Participants, ", ") },
			},
			Category: kind,
		},
		Summaries: []listing.Summary[domain.CalendarEvent]{
			{Label: "Today's Events", Reduce: listing.CountWhere(func(e domain.CalendarEvent) bool { return e.Date == today })},
			{Label: "Total Events", Reduce: listing.Count[domain.CalendarEvent]()},
			{Label: "Meetings", Reduce: listing.CountWhere(statusIs(kind, "meeting"))},
			{Label: "Upcoming", Tone: domain.ToneInfo, Reduce: listing.CountWhere(func(e domain.CalendarEvent) bool { return e.Date > today })},
		},
		Columns: []listing.Column[domain.CalendarEvent]{
			{Title: "Date", Cell: func(e domain.CalendarEvent) string { return e.Date }},
			{Title: "Time", Align: table.AlignRight, Cell: func(e domain.CalendarEvent) string { return e.Time }},
			{Title: "Event", Cell: func(e domain.CalendarEvent) string { return e.Title }},
			{Title: "Type", Cell: kind},
			{Title: "When", Cell: func(e domain.CalendarEvent) string { return relativeDay(e.Date, today) }},
		},
		Details: []listing.Attr[domain.CalendarEvent]{
			{Label: "Event", Value: func(e domain.CalendarEvent) string { return e.Title }},
			{Label: "Date", Value: func(e domain.CalendarEvent) string { return e.Date + " " + e.Time }},
			{Label: "When", Value: func(e domain.CalendarEvent) string { return relativeDay(e.Date, today) }},
			{Label: "Type", Value: kind},
			{Label: "Participants", Value: func(e domain.CalendarEvent) string { return orDash(strings.Join(e.Participants, ", ")) }},
			{Label: "Amount", Value: func(e domain.CalendarEvent) string {
				if e.Amount.IsZero() {
					return "—"
				}
				return money.Format(e.Amount)
			}},
			{Label: "Borrower", Value: func(e domain.CalendarEvent) string { return orDash(e.Borrower) }},
			{Label: "Location", Value: func(e domain.CalendarEvent) string { return orDash(e.Location) }},
		},
		Tone: func(e domain.CalendarEvent) domain.Tone {
			if e.Date == today {
				return domain.ToneNotice
			}
			return domain.ToneNeutral
		},
		Add: &listing.DialogSpec{
			Title:  "New Event",
			Submit: "Create Event",
			Fields: []listing.DialogField{
				textField("title", "Title", "Event title"),
				textField("date", "Date", dateLayout),
				textField("time", "Time", "10:00 AM"),
				choiceField("type", "Type", "meeting", "payment", "assessment", "audit"),
			},
		},
	}
}

func relativeDay(date, today string) string {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	ref, err := time.Parse(dateLayout, today)
	if err != nil {
		return ""
	}
	if day.Equal(ref) {
		return "today"
	}
	return humanize.RelTime(day, ref, "ago", "from now")
}
