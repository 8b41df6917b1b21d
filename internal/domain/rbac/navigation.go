package rbac

// NavItem entrada del menú lateral.
type NavItem struct {
	Name         string    `json:"name"`
	Href         string    `json:"href"`
	RequiredRole Role      `json:"required_role"`
	Children     []NavItem `json:"children,omitempty"`
}

// navigation menú completo del panel.
var navigation = []NavItem{
	{Name: "Dashboard", Href: "/dashboard", RequiredRole: RoleViewer},
	{Name: "Inventory", Href: "/inventory", RequiredRole: RoleViewer, Children: []NavItem{
		{Name: "Items", Href: "/inventory/items", RequiredRole: RoleViewer},
		{Name: "Stock Levels", Href: "/inventory/stock", RequiredRole: RoleViewer},
		{Name: "Locations", Href: "/inventory/locations", RequiredRole: RoleManager},
		{Name: "Categories", Href: "/inventory/categories", RequiredRole: RoleManager},
	}},
	{Name: "Purchase Orders", Href: "/purchase-orders", RequiredRole: RoleOperator},
	{Name: "Transfers", Href: "/transfers", RequiredRole: RoleOperator},
	{Name: "Sales", Href: "/sales", RequiredRole: RoleOperator},
	{Name: "Production", Href: "/production", RequiredRole: RoleOperator, Children: []NavItem{
		{Name: "Recipes", Href: "/production/recipes", RequiredRole: RoleManager},
		{Name: "Production Orders", Href: "/production/orders", RequiredRole: RoleOperator},
		{Name: "Work in Progress", Href: "/production/wip", RequiredRole: RoleOperator},
	}},
	{Name: "Suppliers", Href: "/suppliers", RequiredRole: RoleManager},
	{Name: "Maintenance", Href: "/maintenance", RequiredRole: RoleOperator},
	{Name: "Reports", Href: "/reports", RequiredRole: RoleViewer, Children: []NavItem{
		{Name: "Inventory Reports", Href: "/reports/inventory", RequiredRole: RoleViewer},
		{Name: "Sales Reports", Href: "/reports/sales", RequiredRole: RoleViewer},
		{Name: "Purchase Reports", Href: "/reports/purchases", RequiredRole: RoleViewer},
		{Name: "Audit Logs", Href: "/reports/audit", RequiredRole: RoleManager},
	}},
	{Name: "Users", Href: "/users", RequiredRole: RoleAdmin},
	{Name: "Settings", Href: "/settings", RequiredRole: RoleManager},
}

// FilterNavigation devuelve el menú visible para role. Un padre sin permiso se omite completo;
// los hijos se filtran uno a uno. Devuelve copias: el menú base no se modifica.
func FilterNavigation(role Role) []NavItem {
	return filter(navigation, role)
}

func filter(items []NavItem, role Role) []NavItem {
	out := make([]NavItem, 0, len(items))
	for _, it := range items {
		if !HasPermission(role, it.RequiredRole) {
			continue
		}
		cp := it
		cp.Children = nil
		if len(it.Children) > 0 {
			cp.Children = filter(it.Children, role)
		}
		out = append(out, cp)
	}
	return out
}
