package dashboard

import "github.com/JaiMadhav/VitalOps/internal/domain"

// NavItem 侧边栏导航项
type NavItem struct {
	Name    string `json:"name"`
	Href    string `json:"href"`
	Icon    string `json:"icon"`
	Current bool   `json:"current,omitempty"`
}

// Navigation 返回角色对应的导航菜单（第一项为当前页 Dashboard）
func Navigation(role domain.Role) ([]NavItem, error) {
	home := NavItem{Name: "Dashboard", Href: "/dashboard", Icon: "bar-chart-3", Current: true}

	switch role {
	case domain.RoleSoldier:
		return []NavItem{
			home,
			{Name: "Health Log", Href: "/health", Icon: "heart"},
			{Name: "Mood Tracker", Href: "/mood", Icon: "brain"},
			{Name: "My Profile", Href: "/profile", Icon: "users"},
			{Name: "Risk Assessment", Href: "/risk", Icon: "alert-triangle"},
		}, nil
	case domain.RoleOfficer:
		return []NavItem{
			home,
			{Name: "Team Overview", Href: "/team", Icon: "users"},
			{Name: "Alerts", Href: "/alerts", Icon: "bell"},
			{Name: "Risk Analysis", Href: "/risk-analysis", Icon: "trending-up"},
			{Name: "Reports", Href: "/reports", Icon: "target"},
		}, nil
	case domain.RoleAdmin:
		return []NavItem{
			home,
			{Name: "User Management", Href: "/users", Icon: "user-plus"},
			{Name: "System Settings", Href: "/settings", Icon: "settings"},
			{Name: "Security Logs", Href: "/security", Icon: "shield"},
			{Name: "Analytics", Href: "/analytics", Icon: "trending-up"},
		}, nil
	default:
		return nil, domain.ErrUnknownRole
	}
}

// DashboardPath 角色仪表盘的前端路由
func DashboardPath(role domain.Role) string {
	switch role {
	case domain.RoleOfficer:
		return "/dashboard/officer"
	case domain.RoleAdmin:
		return "/dashboard/admin"
	default:
		return "/dashboard"
	}
}
