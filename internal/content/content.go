// Package content holds the marketing site copy and navigation structure
// served by the page endpoints. Layout and styling live in the frontend;
// this is data only.
package content

// NavigationItem is one entry inside a navigation tab.
type NavigationItem struct {
	Name        string `json:"name"`
	Href        string `json:"href"`
	Description string `json:"description"`
}

// NavigationTab groups navigation items under a heading.
type NavigationTab struct {
	Name  string           `json:"name"`
	Items []NavigationItem `json:"items"`
}

// Feature is one marketing feature bullet.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Page is the server-rendered content for one marketing page.
type Page struct {
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Tagline  string    `json:"tagline,omitempty"`
	Body     string    `json:"body,omitempty"`
	Features []Feature `json:"features,omitempty"`
}

// NavigationTabs is the authenticated portal navigation.
var NavigationTabs = []NavigationTab{
	{
		Name: "Customers",
		Items: []NavigationItem{
			{Name: "Customer List", Href: "/customers", Description: "View all customers"},
			{Name: "Add Customer", Href: "/customers/add", Description: "Create new customer"},
			{Name: "Customer Groups", Href: "/customers/groups", Description: "Manage customer segments"},
			{Name: "Customer Reports", Href: "/customers/reports", Description: "Customer analytics"},
		},
	},
	{
		Name: "Banking",
		Items: []NavigationItem{
			{Name: "Accounts", Href: "/banking/accounts", Description: "Bank account management"},
			{Name: "Transactions", Href: "/banking/transactions", Description: "Transaction history"},
			{Name: "Reconciliation", Href: "/banking/reconciliation", Description: "Bank reconciliation"},
			{Name: "Transfers", Href: "/banking/transfers", Description: "Money transfers"},
		},
	},
	{
		Name: "Accounting",
		Items: []NavigationItem{
			{Name: "Chart of Accounts", Href: "/accounting/chart", Description: "Account structure"},
			{Name: "Journal Entries", Href: "/accounting/journal", Description: "Manual entries"},
			{Name: "General Ledger", Href: "/accounting/ledger", Description: "Account balances"},
			{Name: "Trial Balance", Href: "/accounting/trial-balance", Description: "Balance verification"},
		},
	},
	{
		Name: "Tools",
		Items: []NavigationItem{
			{Name: "Bulk Operations", Href: "/tools/bulk", Description: "Batch processing"},
			{Name: "Import/Export", Href: "/tools/import-export", Description: "Data management"},
			{Name: "Integrations", Href: "/tools/integrations", Description: "Third-party apps"},
			{Name: "Settings", Href: "/tools/settings", Description: "System configuration"},
		},
	},
	{
		Name: "Reports",
		Items: []NavigationItem{
			{Name: "Financial Reports", Href: "/reports/financial", Description: "P&L, Balance Sheet"},
			{Name: "Tax Reports", Href: "/reports/tax", Description: "Tax compliance"},
			{Name: "Custom Reports", Href: "/reports/custom", Description: "Build your own"},
		},
	},
}

// Pages indexes the marketing pages by slug.
var Pages = map[string]Page{
	"home": {
		Slug:    "home",
		Title:   "PayHive",
		Tagline: "Bookkeeping made simple for UK sole traders",
		Features: []Feature{
			{Title: "Invoicing", Description: "Create and send professional invoices in seconds"},
			{Title: "Expense tracking", Description: "Snap receipts and categorise expenses automatically"},
			{Title: "Self Assessment ready", Description: "Figures organised for your annual tax return"},
			{Title: "Bank reconciliation", Description: "Match transactions against your bank feed"},
		},
	},
	"pricing": {
		Slug:    "pricing",
		Title:   "Pricing",
		Tagline: "One simple plan for sole traders",
		Body:    "Everything included. No hidden fees, cancel any time.",
	},
	"about-us": {
		Slug:  "about-us",
		Title: "About Us",
		Body:  "PayHive was built to take the pain out of bookkeeping for the UK's self-employed.",
	},
	"services": {
		Slug:  "services",
		Title: "Services",
		Features: []Feature{
			{Title: "Bookkeeping", Description: "Day-to-day records kept tidy"},
			{Title: "VAT returns", Description: "Making Tax Digital compatible submissions"},
			{Title: "Payroll", Description: "Simple payroll for small teams"},
		},
	},
	"contact": {
		Slug:    "contact",
		Title:   "Contact Us",
		Tagline: "We usually reply within one working day",
	},
}
