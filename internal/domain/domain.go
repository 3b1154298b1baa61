// Package domain holds the immutable records shown by the dashboard.
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Borrower struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Email       string          `yaml:"email"`
	Phone       string          `yaml:"phone"`
	Address     string          `yaml:"address"`
	CreditScore int             `yaml:"creditScore"`
	Status      string          `yaml:"status"`
	TotalLoans  decimal.Decimal `yaml:"totalLoans"`
	LastPayment string          `yaml:"lastPayment"`
}

type Loan struct {
	ID               string          `yaml:"id"`
	BorrowerID       string          `yaml:"borrowerId"`
	BorrowerName     string          `yaml:"borrowerName"`
	Amount           decimal.Decimal `yaml:"amount"`
	InterestRate     decimal.Decimal `yaml:"interestRate"`
	Term             int             `yaml:"term"`
	Status           string          `yaml:"status"`
	StartDate        string          `yaml:"startDate"`
	DueDate          string          `yaml:"dueDate"`
	RemainingBalance decimal.Decimal `yaml:"remainingBalance"`
	NextPayment      string          `yaml:"nextPayment"`
	MonthlyPayment   decimal.Decimal `yaml:"monthlyPayment"`
}

// Repayment leaves PaymentDate, Method and Reference empty until paid.
type Repayment struct {
	ID           string          `yaml:"id"`
	LoanID       string          `yaml:"loanId"`
	BorrowerName string          `yaml:"borrowerName"`
	Amount       decimal.Decimal `yaml:"amount"`
	Principal    decimal.Decimal `yaml:"principal"`
	Interest     decimal.Decimal `yaml:"interest"`
	PaymentDate  string          `yaml:"paymentDate"`
	DueDate      string          `yaml:"dueDate"`
	Status       string          `yaml:"status"`
	Method       string          `yaml:"method"`
	Reference    string          `yaml:"reference"`
}

type Collateral struct {
	ID              string          `yaml:"id"`
	LoanID          string          `yaml:"loanId"`
	BorrowerName    string          `yaml:"borrowerName"`
	Type            string          `yaml:"type"`
	Description     string          `yaml:"description"`
	Location        string          `yaml:"location"`
	EstimatedValue  decimal.Decimal `yaml:"estimatedValue"`
	CurrentValue    decimal.Decimal `yaml:"currentValue"`
	Status          string          `yaml:"status"`
	Condition       string          `yaml:"condition"`
	AppraisalDate   string          `yaml:"appraisalDate"`
	InsuranceStatus string          `yaml:"insuranceStatus"`
}

type SavingsAccount struct {
	ID              string          `yaml:"id"`
	AccountNumber   string          `yaml:"accountNumber"`
	CustomerName    string          `yaml:"customerName"`
	CustomerID      string          `yaml:"customerId"`
	AccountType     string          `yaml:"accountType"`
	CurrentBalance  decimal.Decimal `yaml:"currentBalance"`
	InterestRate    decimal.Decimal `yaml:"interestRate"`
	MinimumBalance  decimal.Decimal `yaml:"minimumBalance"`
	OpenDate        string          `yaml:"openDate"`
	LastTransaction string          `yaml:"lastTransaction"`
	Status          string          `yaml:"status"`
	Goal            decimal.Decimal `yaml:"goal"`
	MonthlyDeposit  decimal.Decimal `yaml:"monthlyDeposit"`
}

var hundred = decimal.NewFromInt(100)

// GoalProgress is the balance as a percentage of the goal, capped at 100.
func (s SavingsAccount) GoalProgress() decimal.Decimal {
	if !s.Goal.IsPositive() {
		return decimal.Zero
	}
	pct := s.CurrentBalance.Div(s.Goal).Mul(hundred)
	return decimal.Min(pct, hundred)
}

type Investor struct {
	ID              string          `yaml:"id"`
	Name            string          `yaml:"name"`
	Type            string          `yaml:"type"`
	TotalInvestment decimal.Decimal `yaml:"totalInvestment"`
	CurrentReturn   decimal.Decimal `yaml:"currentReturn"`
	PortfolioLoans  int             `yaml:"portfolioLoans"`
	RiskProfile     string          `yaml:"riskProfile"`
	JoinDate        string          `yaml:"joinDate"`
	Status          string          `yaml:"status"`
}

type Expense struct {
	ID          string          `yaml:"id"`
	Description string          `yaml:"description"`
	Category    string          `yaml:"category"`
	Amount      decimal.Decimal `yaml:"amount"`
	Date        string          `yaml:"date"`
	Vendor      string          `yaml:"vendor"`
	Status      string          `yaml:"status"`
	Reference   string          `yaml:"reference"`
}

// ChartPoint is one value of a static chart series.
type ChartPoint struct {
	Series string          `yaml:"series"`
	Label  string          `yaml:"label"`
	Value  decimal.Decimal `yaml:"value"`
	Unit   string          `yaml:"unit"`
}

// ID identifies a point by series and label.
func (p ChartPoint) ID() string {
	return p.Series + "/" + p.Label
}

type Report struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	GeneratedDate string `yaml:"generatedDate"`
	Period        string `yaml:"period"`
	Status        string `yaml:"status"`
	Size          string `yaml:"size"`
}

type LedgerAccount struct {
	Account string          `yaml:"account"`
	Balance decimal.Decimal `yaml:"balance"`
	Type    string          `yaml:"type"`
	Change  string          `yaml:"change"`
}

const (
	SettingToggle = "toggle"
	SettingText   = "text"
)

type Setting struct {
	Key         string `yaml:"key"`
	Group       string `yaml:"group"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"`
	Value       string `yaml:"value"`
}

// Enabled reports whether a toggle setting is switched on.
func (s Setting) Enabled() bool {
	return s.Kind == SettingToggle && strings.EqualFold(s.Value, "true")
}

// Display renders the value the way the settings screen shows it.
func (s Setting) Display() string {
	if s.Kind != SettingToggle {
		return s.Value
	}
	if s.Enabled() {
		return "on"
	}
	return "off"
}

type Branch struct {
	ID      string          `yaml:"id"`
	Name    string          `yaml:"name"`
	Address string          `yaml:"address"`
	Manager string          `yaml:"manager"`
	Staff   int             `yaml:"staff"`
	Loans   int             `yaml:"loans"`
	Revenue decimal.Decimal `yaml:"revenue"`
	Status  string          `yaml:"status"`
}

type StaffMember struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Email       string   `yaml:"email"`
	Role        string   `yaml:"role"`
	Department  string   `yaml:"department"`
	Branch      string   `yaml:"branch"`
	Permissions []string `yaml:"permissions"`
	Status      string   `yaml:"status"`
	LastActive  string   `yaml:"lastActive"`
}

type CalendarEvent struct {
	ID           string          `yaml:"id"`
	Title        string          `yaml:"title"`
	Date         string          `yaml:"date"`
	Time         string          `yaml:"time"`
	Type         string          `yaml:"type"`
	Participants []string        `yaml:"participants"`
	Amount       decimal.Decimal `yaml:"amount"`
	Borrower     string          `yaml:"borrower"`
	Location     string          `yaml:"location"`
}

// Dataset is the full static data set behind every section.
type Dataset struct {
	Company    string           `yaml:"company"`
	Today      string           `yaml:"today"`
	Borrowers  []Borrower       `yaml:"borrowers"`
	Loans      []Loan           `yaml:"loans"`
	Repayments []Repayment      `yaml:"repayments"`
	Collateral []Collateral     `yaml:"collateral"`
	Savings    []SavingsAccount `yaml:"savings"`
	Investors  []Investor       `yaml:"investors"`
	Expenses   []Expense        `yaml:"expenses"`
	Charts     []ChartPoint     `yaml:"charts"`
	Reports    []Report         `yaml:"reports"`
	Ledger     []LedgerAccount  `yaml:"ledger"`
	Settings   []Setting        `yaml:"settings"`
	Branches   []Branch         `yaml:"branches"`
	Staff      []StaffMember    `yaml:"staff"`
	Calendar   []CalendarEvent  `yaml:"calendar"`
}
