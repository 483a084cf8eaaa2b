package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DefaultUserType = "comum"

	CategoryTypeIncome   = "receita"
	CategoryTypeExpense  = "despesa"
	CategoryTypeTransfer = "transferencia"
)

// IsValidCategoryType reports whether t is one of receita, despesa or transferencia.
func IsValidCategoryType(t string) bool {
	switch t {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeTransfer:
		return true
	}
	return false
}

type User struct {
	ID                    string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name                  string     `gorm:"column:nome;size:100;not null" json:"nome"`
	Email                 string     `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Password              string     `gorm:"column:senha;size:255;not null" json:"-"`
	UserType              string     `gorm:"column:tipo_usuario;size:20;not null" json:"tipo_usuario"`
	AllowRetroactiveEntry bool       `gorm:"column:permite_lancamento_retroativo;not null" json:"permite_lancamento_retroativo"`
	CreatedAt             time.Time  `gorm:"column:criado_em;autoCreateTime" json:"criado_em"`
	Accounts              []Account  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Categories            []Category `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "usuarios"
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Category struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string `gorm:"column:nome;size:100;not null" json:"nome"`
	Type   string `gorm:"column:tipo;size:20;not null" json:"tipo"`
	UserID string `gorm:"column:usuario_id;type:uuid;not null;index" json:"usuario_id"`
}

func (Category) TableName() string {
	return "categorias"
}

func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type Account struct {
	ID             string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string          `gorm:"column:nome;size:100;not null" json:"nome"`
	Type           string          `gorm:"column:tipo;size:50" json:"tipo"`
	InitialBalance decimal.Decimal `gorm:"column:saldo_inicial;type:numeric(15,2);not null" json:"saldo_inicial"`
	UserID         string          `gorm:"column:usuario_id;type:uuid;not null;index" json:"usuario_id"`
	CurrencyID     *string         `gorm:"column:moeda_id;type:uuid;index" json:"moeda_id"`
	Currency       *Currency       `gorm:"foreignKey:CurrencyID;constraint:OnDelete:SET NULL" json:"moeda"`
}

func (Account) TableName() string {
	return "contas"
}

func (a *Account) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type Currency struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Code    string `gorm:"column:codigo;size:3;uniqueIndex;not null" json:"codigo"`
	Name    string `gorm:"column:nome;size:50;not null" json:"nome"`
	Symbol  string `gorm:"column:simbolo;size:5" json:"simbolo"`
	Primary bool   `gorm:"column:principal;not null" json:"principal"`
}

func (Currency) TableName() string {
	return "moedas"
}

func (c *Currency) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// AccountSummary is the account shape embedded in a user detail response.
type AccountSummary struct {
	ID             string          `json:"id"`
	Name           string          `json:"nome"`
	Type           string          `json:"tipo"`
	InitialBalance decimal.Decimal `json:"saldo_inicial"`
}

type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
	Type string `json:"tipo"`
}

// UserDetail is a user together with its accounts and categories.
type UserDetail struct {
	User
	Accounts   []AccountSummary  `json:"contas"`
	Categories []CategorySummary `json:"categorias"`
}

func NewUserDetail(u *User) *UserDetail {
	detail := &UserDetail{
		User:       *u,
		Accounts:   make([]AccountSummary, 0, len(u.Accounts)),
		Categories: make([]CategorySummary, 0, len(u.Categories)),
	}
	for _, a := range u.Accounts {
		detail.Accounts = append(detail.Accounts, AccountSummary{ID: a.ID, Name: a.Name, Type: a.Type, InitialBalance: a.InitialBalance})
	}
	for _, c := range u.Categories {
		detail.Categories = append(detail.Categories, CategorySummary{ID: c.ID, Name: c.Name, Type: c.Type})
	}
	return detail
}

// All lists every model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{&User{}, &Currency{}, &Category{}, &Account{}}
}
