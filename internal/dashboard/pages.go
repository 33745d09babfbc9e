package dashboard

import "sort"

// Page 尚未实现的功能页（占位页）
type Page struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var placeholderPages = map[string]Page{
	"team":            {Title: "Team Overview", Description: "Monitor health status and risk levels across your assigned personnel."},
	"alerts":          {Title: "Alert Management", Description: "Real-time notifications and alert management for high-risk situations."},
	"risk-analysis":   {Title: "Risk Analysis", Description: "Advanced analytics and ML-driven predictions for team health monitoring."},
	"reports":         {Title: "Reports & Analytics", Description: "Generate comprehensive reports and export data for analysis."},
	"users":           {Title: "User Management", Description: "Add, modify, and manage system users with role-based access controls."},
	"settings":        {Title: "System Settings", Description: "Configure system parameters, alert thresholds, and security settings."},
	"security":        {Title: "Security & Audit Logs", Description: "Review system access logs, security events, and audit trails."},
	"analytics":       {Title: "System Analytics", Description: "Advanced system performance metrics and usage analytics."},
	"terms":           {Title: "Terms of Service", Description: "Legal terms and conditions for using the SSMS platform."},
	"privacy":         {Title: "Privacy Policy", Description: "Information about data handling, encryption, and privacy protection."},
	"forgot-password": {Title: "Password Recovery", Description: "Secure password reset functionality with multi-factor verification."},
}

// LookupPage 按 slug 查找占位页
func LookupPage(slug string) (Page, bool) {
	p, ok := placeholderPages[slug]
	if !ok {
		return Page{}, false
	}
	p.Slug = slug
	return p, true
}

// Pages 所有占位页（按 slug 排序）
func Pages() []Page {
	out := make([]Page, 0, len(placeholderPages))
	for slug := range placeholderPages {
		p, _ := LookupPage(slug)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
