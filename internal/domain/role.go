package domain

import (
	"errors"
	"strings"
)

// ErrUnknownRole 未知的仪表盘角色
var ErrUnknownRole = errors.New("unknown role")

// Role 仪表盘角色，决定可见的视图与导航
type Role uint8

const (
	RoleSoldier Role = iota + 1
	RoleOfficer
	RoleAdmin
)

// AllRoles 按展示顺序列出全部角色
var AllRoles = []Role{RoleSoldier, RoleOfficer, RoleAdmin}

func (r Role) String() string {
	switch r {
	case RoleSoldier:
		return "soldier"
	case RoleOfficer:
		return "officer"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Valid 是否为已定义角色
func (r Role) Valid() bool {
	return r >= RoleSoldier && r <= RoleAdmin
}

// ParseRole 解析角色字符串（大小写不敏感）
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soldier":
		return RoleSoldier, nil
	case "officer":
		return RoleOfficer, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return 0, ErrUnknownRole
	}
}

// MarshalText 以字符串形式序列化（JSON/YAML）
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, ErrUnknownRole
	}
	return []byte(r.String()), nil
}

// UnmarshalText 从字符串反序列化
func (r *Role) UnmarshalText(b []byte) error {
	v, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
