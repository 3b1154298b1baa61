package menu

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/atomicstack/loandesk/internal/data/seed"
	"github.com/atomicstack/loandesk/internal/listing"
)

func seedRegistry(t *testing.T) *Registry {
	t.Helper()
	ds, err := seed.Default()
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	return BuildRegistry(ds)
}

func statValues(t *testing.T, reg *Registry, id string) map[string]string {
	t.Helper()
	section, ok := reg.Find(id)
	if !ok {
		t.Fatalf("section %s missing", id)
	}
	values := make(map[string]string)
	for _, stat := range section.View.Stats() {
		values[stat.Label] = stat.Display()
	}
	return values
}

func TestBuildRegistryOrder(t *testing.T) {
	reg := seedRegistry(t)
	want := []string{
		"borrowers", "loans", "repayments", "collateral", "savings", "investors", "expenses",
		"charts", "reports", "accounting", "settings", "branches", "staff", "calendar",
	}
	sections := reg.Sections()
	if len(sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(sections))
	}
	for i, id := range want {
		if sections[i].ID != id {
			t.Fatalf("section %d: got %s want %s", i, sections[i].ID, id)
		}
		if len(sections[i].View.Stats()) != 4 {
			t.Fatalf("section %s should have 4 stat cards", id)
		}
	}
}

func TestSectionStats(t *testing.T) {
	reg := seedRegistry(t)
	cases := map[string]map[string]string{
		"borrowers": {"Total Borrowers": "4", "Active": "3", "Defaulted": "1", "Avg Credit Score": "685"},
		"loans":     {"Total Loans Amount": "K110,000", "Outstanding": "K86,100", "Active Loans": "3", "Overdue Loans": "1"},
		"repayments": {
			"Collected":       "K2,363.10",
			"Overdue":         "K854.30",
			"Pending":         "K832.50",
			"Collection Rate": "60.0%",
		},
		"collateral": {"Total Value": "K758,500", "Active": "3", "Under Review": "1", "Expired Insurance": "1"},
		"savings":    {"Total Savings": "K134,411.90", "Active Accounts": "3", "Avg Interest": "4.1%", "Total Goals": "K190,000"},
		"investors":  {"Total Investors": "2", "Total Capital": "K2.7M", "Avg Return": "8.9%", "Portfolio Loans": "53"},
		"expenses":   {"Total Expenses": "K5,700", "Paid": "K4,500", "Pending": "K1,200", "Categories": "2"},
		"charts":     {"Disbursed": "K3.3M", "Collected": "K3M", "Revenue": "K570K", "Profit": "K275K"},
		"reports":    {"Total Reports": "3", "Completed": "2", "Processing": "1", "Report Types": "3"},
		"accounting": {"Total Assets": "K2,655,000", "Revenue": "K185,000", "Expenses": "-K70,000", "Net Income": "K115,000"},
		"settings":   {"Settings": "11", "Enabled": "5", "Disabled": "1", "Groups": "4"},
		"branches":   {"Total Branches": "3", "Total Staff": "26", "Active Loans": "175", "Total Revenue": "K286,000"},
		"staff":      {"Total Staff": "3", "Active Users": "3", "Departments": "3", "Unique Roles": "3"},
		"calendar":   {"Today's Events": "2", "Total Events": "4", "Meetings": "1", "Upcoming": "2"},
	}
	for id, want := range cases {
		got := statValues(t, reg, id)
		for label, value := range want {
			if got[label] != value {
				t.Fatalf("%s %q: got %q want %q", id, label, got[label], value)
			}
		}
	}
}

func TestStatsIgnoreQuery(t *testing.T) {
	reg := seedRegistry(t)
	loans, _ := reg.Find("loans")
	before := statValues(t, reg, "loans")
	rows := loans.View.Rows(listing.Query{Search: "john", Category: "overdue"})
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
	after := statValues(t, reg, "loans")
	for label, value := range before {
		if after[label] != value {
			t.Fatalf("stat %s changed from %s to %s", label, value, after[label])
		}
	}
}

func TestSectionSearchFields(t *testing.T) {
	reg := seedRegistry(t)
	cases := []struct {
		section string
		query   listing.Query
		want    []string
	}{
		{"borrowers", listing.Query{Search: "JOHN"}, []string{"B001", "B002"}},
		{"borrowers", listing.Query{Search: "b003"}, []string{"B003"}},
		{"borrowers", listing.Query{Category: "defaulted"}, []string{"B003"}},
		{"loans", listing.Query{Search: "B004"}, []string{"L004"}},
		{"loans", listing.Query{Category: "active"}, []string{"L001", "L002", "L004"}},
		{"repayments", listing.Query{Category: "paid"}, []string{"R001", "R002", "R004"}},
		{"collateral", listing.Query{Category: "real-estate"}, []string{"C001", "C004"}},
		{"staff", listing.Query{Search: "loan officer"}, []string{"ST002"}},
		{"calendar", listing.Query{Search: "emily"}, []string{"3"}},
		{"branches", listing.Query{Category: "anything"}, []string{"BR001", "BR002", "BR003"}},
	}
	for _, tc := range cases {
		section, _ := reg.Find(tc.section)
		rows := section.View.Rows(tc.query)
		got := make([]string, 0, len(rows))
		for _, row := range rows {
			got = append(got, row.ID)
		}
		if strings.Join(got, ",") != strings.Join(tc.want, ",") {
			t.Fatalf("%s %+v: got %v want %v", tc.section, tc.query, got, tc.want)
		}
	}
}

func TestSectionCategories(t *testing.T) {
	reg := seedRegistry(t)
	branches, _ := reg.Find("branches")
	if branches.View.Categories() != nil {
		t.Fatalf("branches should have no category filter")
	}
	collateral, _ := reg.Find("collateral")
	got := strings.Join(collateral.View.Categories(), ",")
	if got != "all,real-estate,vehicle,equipment" {
		t.Fatalf("unexpected collateral categories %s", got)
	}
}

func TestSectionDialogs(t *testing.T) {
	reg := seedRegistry(t)
	titles := map[string]string{
		"borrowers":  "Add New Borrower",
		"loans":      "Create New Loan",
		"repayments": "Record New Payment",
		"collateral": "Add New Collateral",
		"savings":    "Open New Savings Account",
		"investors":  "Add New Investor",
		"expenses":   "Add New Expense",
		"reports":    "Generate New Report",
		"branches":   "Add New Branch",
		"staff":      "Add Staff Member",
		"calendar":   "New Event",
	}
	for _, section := range reg.Sections() {
		spec, ok := section.View.AddDialog()
		want, expected := titles[section.ID]
		if ok != expected {
			t.Fatalf("%s: add dialog presence %v, want %v", section.ID, ok, expected)
		}
		if ok && spec.Title != want {
			t.Fatalf("%s: got title %q want %q", section.ID, spec.Title, want)
		}
	}

	settings, _ := reg.Find("settings")
	edit, ok := settings.View.EditDialog("two-factor")
	if !ok || edit.Title != "Edit Setting" || edit.Fields[0].Value != "false" {
		t.Fatalf("unexpected settings edit dialog %+v", edit)
	}
	loans, _ := reg.Find("loans")
	add, _ := loans.View.AddDialog()
	if strings.Join(add.Fields[0].Options, ",") != "B001,B002,B003,B004" {
		t.Fatalf("loan dialog should offer borrower ids, got %v", add.Fields[0].Options)
	}
}

func TestBorrowerDetail(t *testing.T) {
	reg := seedRegistry(t)
	borrowers, _ := reg.Find("borrowers")
	fields, ok := borrowers.View.Detail("B003")
	if !ok {
		t.Fatalf("expected detail for B003")
	}
	found := false
	for _, f := range fields {
		if f.Label == "Credit Score" {
			found = true
			if f.Value != "590 (poor)" {
				t.Fatalf("unexpected credit score %q", f.Value)
			}
		}
	}
	if !found {
		t.Fatalf("credit score missing from detail")
	}
}

func TestBar(t *testing.T) {
	peak := listingDecimal(100)
	if got := bar(listingDecimal(50), peak, 10); got != "█████░░░░░" {
		t.Fatalf("unexpected half bar %q", got)
	}
	if got := bar(listingDecimal(500), peak, 4); got != "████" {
		t.Fatalf("bar should clamp, got %q", got)
	}
	if got := bar(listingDecimal(1), listingDecimal(0), 4); got != "" {
		t.Fatalf("zero peak should render nothing, got %q", got)
	}
}

func TestRelativeDay(t *testing.T) {
	if got := relativeDay("2024-02-15", "2024-02-15"); got != "today" {
		t.Fatalf("got %q", got)
	}
	if got := relativeDay("2024-02-20", "2024-02-15"); !strings.HasSuffix(got, "from now") {
		t.Fatalf("expected future phrasing, got %q", got)
	}
	if got := relativeDay("2024-02-10", "2024-02-15"); !strings.HasSuffix(got, "ago") {
		t.Fatalf("expected past phrasing, got %q", got)
	}
	if got := relativeDay("soon", "2024-02-15"); got != "" {
		t.Fatalf("invalid date should render empty, got %q", got)
	}
}

func listingDecimal(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
