package domain

import (
	"errors"
	"time"
)

// Settings category identifiers. Each category is stored as a single
// document and edited as a unit from the admin panel.
const (
	CategoryMarketing    = "marketing"
	CategorySystem       = "system"
	CategoryNotification = "notification"
	CategoryCommission   = "commission"
	CategoryAI           = "ai"
	CategoryAnalytics    = "analytics"
)

var (
	ErrUnknownSettingsCategory = errors.New("unknown settings category")
	ErrSettingsNotFound        = errors.New("settings not found")
	ErrInvalidSettingsPayload  = errors.New("invalid settings payload")
)

// Settings is implemented by every per-category settings schema.
type Settings interface {
	Category() string
	Touch(now time.Time)
}

// MarketingSettings configures email/SMS campaign providers and the
// loyalty and referral programs.
type MarketingSettings struct {
	SendgridAPIKey    string `json:"sendgrid_api_key,omitempty" bson:"sendgrid_api_key,omitempty"`
	SendgridFromEmail string `json:"sendgrid_from_email,omitempty" bson:"sendgrid_from_email,omitempty" validate:"omitempty,email"`
	SendgridFromName  string `json:"sendgrid_from_name,omitempty" bson:"sendgrid_from_name,omitempty"`

	TwilioAccountSID  string `json:"twilio_account_sid,omitempty" bson:"twilio_account_sid,omitempty"`
	TwilioAuthToken   string `json:"twilio_auth_token,omitempty" bson:"twilio_auth_token,omitempty"`
	TwilioPhoneNumber string `json:"twilio_phone_number,omitempty" bson:"twilio_phone_number,omitempty"`

	WelcomeDiscountPercent    float64 `json:"welcome_discount_percent" bson:"welcome_discount_percent" validate:"gte=0,lte=100"`
	ReferralBonusAmount       float64 `json:"referral_bonus_amount" bson:"referral_bonus_amount" validate:"gte=0"`
	AutoEmailCampaignsEnabled bool    `json:"auto_email_campaigns_enabled" bson:"auto_email_campaigns_enabled"`
	LoyaltyProgramEnabled     bool    `json:"loyalty_program_enabled" bson:"loyalty_program_enabled"`
	LoyaltyPointsPerRupee     float64 `json:"loyalty_points_per_rupee" bson:"loyalty_points_per_rupee" validate:"gte=0"`
	ReferralBonusPoints       int     `json:"referral_bonus_points" bson:"referral_bonus_points" validate:"gte=0"`

	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (*MarketingSettings) Category() string { return CategoryMarketing }
func (s *MarketingSettings) Touch(now time.Time) { s.UpdatedAt = now }

// SystemSettings configures platform-wide identity and operation flags.
type SystemSettings struct {
	SiteName        string `json:"site_name" bson:"site_name" validate:"required"`
	SiteDescription string `json:"site_description,omitempty" bson:"site_description,omitempty"`
	AdminEmail      string `json:"admin_email,omitempty" bson:"admin_email,omitempty" validate:"omitempty,email"`
	SupportEmail    string `json:"support_email,omitempty" bson:"support_email,omitempty" validate:"omitempty,email"`
	CompanyPhone    string `json:"company_phone,omitempty" bson:"company_phone,omitempty"`
	CompanyAddress  string `json:"company_address,omitempty" bson:"company_address,omitempty"`

	TaxRate                float64 `json:"tax_rate" bson:"tax_rate" validate:"gte=0,lte=100"`
	PlatformCommissionRate float64 `json:"platform_commission_rate" bson:"platform_commission_rate" validate:"gte=0,lte=100"`
	MaintenanceMode        bool    `json:"maintenance_mode" bson:"maintenance_mode"`
	CacheEnabled           bool    `json:"cache_enabled" bson:"cache_enabled"`
	TwoFactorAuthEnabled   bool    `json:"two_factor_auth_enabled" bson:"two_factor_auth_enabled"`

	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (*SystemSettings) Category() string { return CategorySystem }
func (s *SystemSettings) Touch(now time.Time) { s.UpdatedAt = now }

// NotificationSettings configures transactional email/SMS delivery.
type NotificationSettings struct {
	SendgridAPIKey    string `json:"sendgrid_api_key,omitempty" bson:"sendgrid_api_key,omitempty"`
	SendgridFromEmail string `json:"sendgrid_from_email,omitempty" bson:"sendgrid_from_email,omitempty" validate:"omitempty,email"`
	TwilioAccountSID  string `json:"twilio_account_sid,omitempty" bson:"twilio_account_sid,omitempty"`
	TwilioAuthToken   string `json:"twilio_auth_token,omitempty" bson:"twilio_auth_token,omitempty"`
	TwilioPhoneNumber string `json:"twilio_phone_number,omitempty" bson:"twilio_phone_number,omitempty"`

	EmailNotificationsEnabled bool `json:"email_notifications_enabled" bson:"email_notifications_enabled"`
	SMSNotificationsEnabled   bool `json:"sms_notifications_enabled" bson:"sms_notifications_enabled"`

	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (*NotificationSettings) Category() string { return CategoryNotification }
func (s *NotificationSettings) Touch(now time.Time) { s.UpdatedAt = now }

// CommissionSettings configures per-category and vendor-tier commission rates.
type CommissionSettings struct {
	DefaultCommissionRate float64 `json:"default_commission_rate" bson:"default_commission_rate" validate:"gte=0,lte=100"`

	ElectronicsCommission float64 `json:"electronics_commission" bson:"electronics_commission" validate:"gte=0,lte=100"`
	FashionCommission     float64 `json:"fashion_commission" bson:"fashion_commission" validate:"gte=0,lte=100"`
	HomeGardenCommission  float64 `json:"home_garden_commission" bson:"home_garden_commission" validate:"gte=0,lte=100"`
	SportsCommission      float64 `json:"sports_commission" bson:"sports_commission" validate:"gte=0,lte=100"`
	BooksCommission       float64 `json:"books_commission" bson:"books_commission" validate:"gte=0,lte=100"`
	BeautyCommission      float64 `json:"beauty_commission" bson:"beauty_commission" validate:"gte=0,lte=100"`

	BronzeTierCommission   float64 `json:"bronze_tier_commission" bson:"bronze_tier_commission" validate:"gte=0,lte=100"`
	SilverTierCommission   float64 `json:"silver_tier_commission" bson:"silver_tier_commission" validate:"gte=0,lte=100"`
	GoldTierCommission     float64 `json:"gold_tier_commission" bson:"gold_tier_commission" validate:"gte=0,lte=100"`
	PlatinumTierCommission float64 `json:"platinum_tier_commission" bson:"platinum_tier_commission" validate:"gte=0,lte=100"`

	BronzeThreshold float64 `json:"bronze_threshold" bson:"bronze_threshold" validate:"gte=0"`
	SilverThreshold float64 `json:"silver_threshold" bson:"silver_threshold" validate:"gte=0"`
	GoldThreshold   float64 `json:"gold_threshold" bson:"gold_threshold" validate:"gte=0"`

	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (*CommissionSettings) Category() string { return CategoryCommission }
func (s *CommissionSettings) Touch(now time.Time) { s.UpdatedAt = now }

// AISettings configures content-generation providers.
type AISettings struct {
	OpenAIAPIKey         string `json:"openai_api_key,omitempty" bson:"openai_api_key,omitempty"`
	GeminiAPIKey         string `json:"gemini_api_key,omitempty" bson:"gemini_api_key,omitempty"`
	DefaultTextModel     string `json:"default_text_model" bson:"default_text_model" validate:"required"`
	DefaultImageProvider string `json:"default_image_provider" bson:"default_image_provider" validate:"oneof=openai gemini"`

	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (*AISettings) Category() string { return CategoryAI }
func (s *AISettings) Touch(now time.Time) { s.UpdatedAt = now }

// AnalyticsSettings configures traffic-tracking integrations.
type AnalyticsSettings struct {
	GoogleAnalyticsID string `json:"google_analytics_id,omitempty" bson:"google_analytics_id,omitempty"`
	FacebookPixelID   string `json:"facebook_pixel_id,omitempty" bson:"facebook_pixel_id,omitempty"`
	HotjarSiteID      string `json:"hotjar_site_id,omitempty" bson:"hotjar_site_id,omitempty"`
	MixpanelToken     string `json:"mixpanel_token,omitempty" bson:"mixpanel_token,omitempty"`
	TrackingEnabled   bool   `json:"tracking_enabled" bson:"tracking_enabled"`

	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (*AnalyticsSettings) Category() string { return CategoryAnalytics }
func (s *AnalyticsSettings) Touch(now time.Time) { s.UpdatedAt = now }

// DefaultSettings returns a freshly initialised schema with platform
// defaults for the given category, or ErrUnknownSettingsCategory.
// Defaults apply when no document has been saved for the category yet.
func DefaultSettings(category string) (Settings, error) {
	switch category {
	case CategoryMarketing:
		return &MarketingSettings{
			WelcomeDiscountPercent:    10.0,
			ReferralBonusAmount:       100.0,
			AutoEmailCampaignsEnabled: true,
			LoyaltyProgramEnabled:     true,
			LoyaltyPointsPerRupee:     1.0,
			ReferralBonusPoints:       100,
		}, nil
	case CategorySystem:
		return &SystemSettings{
			SiteName:               "MarketPlace Pro",
			SiteDescription:        "World's Most Advanced Marketplace",
			TaxRate:                18.0,
			PlatformCommissionRate: 5.0,
			CacheEnabled:           true,
			TwoFactorAuthEnabled:   true,
		}, nil
	case CategoryNotification:
		return &NotificationSettings{
			EmailNotificationsEnabled: true,
		}, nil
	case CategoryCommission:
		return &CommissionSettings{
			DefaultCommissionRate:  5.0,
			ElectronicsCommission:  3.5,
			FashionCommission:      7.0,
			HomeGardenCommission:   4.5,
			SportsCommission:       5.0,
			BooksCommission:        8.0,
			BeautyCommission:       6.0,
			BronzeTierCommission:   8.0,
			SilverTierCommission:   6.0,
			GoldTierCommission:     4.0,
			PlatinumTierCommission: 2.5,
			BronzeThreshold:        100000.0,
			SilverThreshold:        500000.0,
			GoldThreshold:          2000000.0,
		}, nil
	case CategoryAI:
		return &AISettings{
			DefaultTextModel:     "gpt-4.1",
			DefaultImageProvider: "openai",
		}, nil
	case CategoryAnalytics:
		return &AnalyticsSettings{
			TrackingEnabled: true,
		}, nil
	}
	return nil, ErrUnknownSettingsCategory
}

// SettingsCategories lists every known category id, for route validation
// and for the admin panel tile grid.
func SettingsCategories() []string {
	return []string{
		CategoryMarketing,
		CategorySystem,
		CategoryNotification,
		CategoryCommission,
		CategoryAI,
		CategoryAnalytics,
	}
}
