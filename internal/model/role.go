package model

import "strings"

// Role is the kind of user a device authenticates as.
// Each variant supplies its own labels so screens never branch on a role name.
type Role interface {
	// Name is the persisted identifier ("player" or "admin")
	Name() string
	// Label is the caption shown next to the current user
	Label() string
	// CardTitle, CardDescription and CardAction fill the role selection card
	CardTitle() string
	CardDescription() string
	CardAction() string
	// AuthTitle and AuthSubtitle head the authentication form
	AuthTitle() string
	AuthSubtitle() string
	// LoginField describes the identity field of the login tab
	LoginField() FormField
	// RegisterFields lists the identity fields of the register tab, password excluded
	RegisterFields() []FormField
	// CanManage reports whether the management panel is available
	CanManage() bool
}

// FormField describes one input on the authentication form
type FormField struct {
	Name        string
	Label       string
	Placeholder string
}

// PlayerRole is a tournament participant
type PlayerRole struct{}

// AdminRole is a tournament organiser
type AdminRole struct{}

var (
	_ Role = PlayerRole{}
	_ Role = AdminRole{}
)

// Role names as persisted
const (
	RoleNamePlayer = "player"
	RoleNameAdmin  = "admin"
)

func (PlayerRole) Name() string         { return RoleNamePlayer }
func (PlayerRole) Label() string        { return "Игрок" }
func (PlayerRole) CardTitle() string    { return "ИГРОК" }
func (PlayerRole) CardAction() string   { return "Войти как игрок" }
func (PlayerRole) AuthTitle() string    { return "ВХОД ИГРОКА" }
func (PlayerRole) AuthSubtitle() string { return "Войдите или зарегистрируйтесь" }
func (PlayerRole) CanManage() bool      { return false }

func (PlayerRole) CardDescription() string {
	return "Участвуйте в турнирах и отслеживайте свою статистику"
}

func (PlayerRole) LoginField() FormField {
	return FormField{Name: "nickname", Label: "Псевдоним", Placeholder: "Введите псевдоним"}
}

func (PlayerRole) RegisterFields() []FormField {
	return []FormField{
		{Name: "firstName", Label: "Имя", Placeholder: "Иван"},
		{Name: "lastName", Label: "Фамилия", Placeholder: "Иванов"},
		{Name: "nickname", Label: "Псевдоним", Placeholder: "ProPlayer123"},
		{Name: "weapon", Label: "Любимое оружие", Placeholder: "AWP"},
		{Name: "favoritePlayer", Label: "Любимый CS игрок", Placeholder: "s1mple"},
	}
}

func (AdminRole) Name() string         { return RoleNameAdmin }
func (AdminRole) Label() string        { return "Администратор" }
func (AdminRole) CardTitle() string    { return "РУКОВОДИТЕЛЬ" }
func (AdminRole) CardAction() string   { return "Админ-панель" }
func (AdminRole) AuthTitle() string    { return "ВХОД АДМИНИСТРАТОРА" }
func (AdminRole) AuthSubtitle() string { return "Войдите с правами администратора" }
func (AdminRole) CanManage() bool      { return true }

func (AdminRole) CardDescription() string {
	return "Управляйте турнирами и статистикой игроков"
}

func (AdminRole) LoginField() FormField {
	return FormField{Name: "nickname", Label: "Логин", Placeholder: "Введите логин"}
}

func (AdminRole) RegisterFields() []FormField {
	return []FormField{
		{Name: "nickname", Label: "Логин администратора", Placeholder: "admin"},
	}
}

// Roles lists the selectable roles in display order
func Roles() []Role {
	return []Role{PlayerRole{}, AdminRole{}}
}

// ParseRole returns the role with the given name
func ParseRole(name string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RoleNamePlayer:
		return PlayerRole{}, nil
	case RoleNameAdmin:
		return AdminRole{}, nil
	}
	return nil, ErrInvalidRole
}

// RoleName returns the role's name, or "" for no role
func RoleName(r Role) string {
	if r == nil {
		return ""
	}
	return r.Name()
}
