package gormdb

import (
	"time"

	"gorm.io/datatypes"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Points       int       `gorm:"default:0"`
	Stars        float64   `gorm:"default:5.0"`
	UserType     string    `gorm:"default:tenant"`
	Phone        *string
	Verified     bool      `gorm:"default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// PostModel é o model GORM para publicações do feed
type PostModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Author           string `gorm:"not null"`
	Time             string `gorm:"not null"`
	Type             string `gorm:"not null"`
	Content          string `gorm:"not null"`
	Image            *string
	MediaType        *string
	TaggedPropertyID *int64
	PostType         string `gorm:"default:update"`
	PropertyID       *int64
	Likes            int  `gorm:"default:0"`
	LikedByMe        bool `gorm:"default:false"`
}

func (PostModel) TableName() string {
	return "posts"
}

// PropertyModel é o model GORM para imóveis
type PropertyModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	OwnerEmail       string `gorm:"not null;index"`
	Title            string `gorm:"not null"`
	Address          *string
	Neighborhood     *string
	City             string
	State            *string
	Country          string
	Price            float64
	Type             *string
	ImageURL         *string `gorm:"column:image_url"`
	MediaType        *string
	Status           string  `gorm:"default:Available;index"`
	CondoFee         float64 `gorm:"default:0"`
	IPTU             float64 `gorm:"column:iptu;default:0"`
	AcceptsPets      bool    `gorm:"default:false"`
	IsFurnished      bool    `gorm:"default:false"`
	GuaranteeType    string  `gorm:"default:Fiador"`
	AvailabilityDate *string
	Photos           datatypes.JSON
	VerifiedPhotos   bool `gorm:"default:false"`
	Description      *string
}

func (PropertyModel) TableName() string {
	return "properties"
}

// FavoriteModel é o model GORM para favoritos
type FavoriteModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserEmail  string    `gorm:"not null;uniqueIndex:idx_favorites_user_property"`
	PropertyID int64     `gorm:"not null;uniqueIndex:idx_favorites_user_property;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (FavoriteModel) TableName() string {
	return "favorites"
}

// InteractionModel é o model GORM para o log de interações
type InteractionModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	UserEmail       string    `gorm:"not null"`
	PropertyID      int64     `gorm:"not null;index"`
	InteractionType string    `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (InteractionModel) TableName() string {
	return "user_interactions"
}

// LeadModel é o model GORM para leads
type LeadModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	PropertyID int64     `gorm:"not null;uniqueIndex:idx_leads_property_user"`
	UserEmail  string    `gorm:"not null;uniqueIndex:idx_leads_property_user"`
	UserName   string    `gorm:"not null"`
	Status     string    `gorm:"default:Novo"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (LeadModel) TableName() string {
	return "leads"
}

// PropertyViewModel é o model GORM para visualizações
type PropertyViewModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	PropertyID int64 `gorm:"not null;index"`
	UserEmail  *string
	ViewedAt   time.Time `gorm:"autoCreateTime"`
}

func (PropertyViewModel) TableName() string {
	return "property_views"
}

// NotificationModel é o model GORM para notificações
type NotificationModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserEmail string `gorm:"not null;index"`
	Type      string `gorm:"not null"`
	Title     *string
	Message   *string
	RelatedID *int64
	Read      bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// ChatModel é o model GORM para chats
type ChatModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	User1Email    string    `gorm:"column:user1_email;not null;uniqueIndex:idx_chats_participants"`
	User2Email    string    `gorm:"column:user2_email;not null;uniqueIndex:idx_chats_participants"`
	LastMessageAt time.Time `gorm:"autoCreateTime"`
}

func (ChatModel) TableName() string {
	return "chats"
}

// MessageModel é o model GORM para mensagens
type MessageModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	ChatID      int64  `gorm:"index"`
	SenderEmail string `gorm:"not null"`
	Content     string
	MessageType string `gorm:"default:text"`
	RelatedID   *int64
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (MessageModel) TableName() string {
	return "messages"
}

// LeaseModel é o model GORM para ocupações
type LeaseModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserEmail  string `gorm:"not null"`
	PropertyID int64  `gorm:"not null"`
	Status     string `gorm:"default:Active"`
}

func (LeaseModel) TableName() string {
	return "leases"
}

// allModels lista os models na ordem de criação das tabelas
func allModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&PostModel{},
		&PropertyModel{},
		&FavoriteModel{},
		&InteractionModel{},
		&LeadModel{},
		&PropertyViewModel{},
		&NotificationModel{},
		&ChatModel{},
		&MessageModel{},
		&LeaseModel{},
	}
}
