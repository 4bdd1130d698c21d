package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/marketplacepro/platform/internal/core/domain"
)

const usersCollection = "users"

type MongoAuthRepository struct {
	coll *mongo.Collection
}

func NewAuthRepository(db *mongo.Database) *MongoAuthRepository {
	return &MongoAuthRepository{coll: db.Collection(usersCollection)}
}

// mongoUser keeps the application-level uuid under "id"; the driver's _id
// is left to Mongo.
type mongoUser struct {
	UserID            string `bson:"id"`
	Email             string `bson:"email"`
	PasswordHash      string `bson:"password_hash"`
	UserType          string `bson:"user_type"`
	RegistrationType  string `bson:"registration_type,omitempty"`
	BusinessName      string `bson:"business_name,omitempty"`
	ContactPerson     string `bson:"contact_person,omitempty"`
	Phone             string `bson:"phone,omitempty"`
	EmailVerified     bool   `bson:"email_verified"`
	VerificationToken string `bson:"email_verification_token,omitempty"`
	AdminVerified     bool   `bson:"admin_verified"`
	AdminVerifiedBy   string `bson:"admin_verified_by,omitempty"`
	AdminVerifiedAt   int64  `bson:"admin_verified_at,omitempty"`
	CreatedAt         int64  `bson:"created_at"`
	UpdatedAt         int64  `bson:"updated_at"`
	LastLogin         int64  `bson:"last_login,omitempty"`
}

func (r *MongoAuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if existing, err := r.FindByEmail(ctx, user.Email); err == nil && existing != nil {
		return nil, domain.ErrUserExists
	}

	doc := mongoUser{
		UserID:            user.ID,
		Email:             user.Email,
		PasswordHash:      user.PasswordHash,
		UserType:          user.UserType,
		RegistrationType:  user.RegistrationType,
		BusinessName:      user.BusinessName,
		ContactPerson:     user.ContactPerson,
		Phone:             user.Phone,
		EmailVerified:     user.EmailVerified,
		VerificationToken: user.VerificationToken,
		AdminVerified:     user.AdminVerified,
		CreatedAt:         user.CreatedAt.Unix(),
		UpdatedAt:         user.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return r.FindByEmail(ctx, user.Email)
}

func (r *MongoAuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return mu.toDomain(), nil
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:                mu.UserID,
		Email:             mu.Email,
		PasswordHash:      mu.PasswordHash,
		UserType:          mu.UserType,
		RegistrationType:  mu.RegistrationType,
		BusinessName:      mu.BusinessName,
		ContactPerson:     mu.ContactPerson,
		Phone:             mu.Phone,
		EmailVerified:     mu.EmailVerified,
		VerificationToken: mu.VerificationToken,
		AdminVerified:     mu.AdminVerified,
		AdminVerifiedBy:   mu.AdminVerifiedBy,
		AdminVerifiedAt:   unixToTime(mu.AdminVerifiedAt),
		CreatedAt:         unixToTime(mu.CreatedAt),
		UpdatedAt:         unixToTime(mu.UpdatedAt),
		LastLogin:         unixToTime(mu.LastLogin),
	}
}

func (r *MongoAuthRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"id": userID},
		bson.M{"$set": bson.M{"last_login": at.Unix()}},
	)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

func (r *MongoAuthRepository) MarkEmailVerified(ctx context.Context, email string, at time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set":   bson.M{"email_verified": true, "updated_at": at.Unix()},
			"$unset": bson.M{"email_verification_token": ""},
		},
	)
	if err != nil {
		return fmt.Errorf("mark email verified: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoAuthRepository) SetVerificationToken(ctx context.Context, email, token string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"email_verification_token": token}},
	)
	if err != nil {
		return fmt.Errorf("set verification token: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoAuthRepository) PendingPartners(ctx context.Context) ([]*domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{
		"registration_type": domain.RegistrationPartner,
		"admin_verified":    false,
	})
	if err != nil {
		return nil, fmt.Errorf("find pending partners: %w", err)
	}
	defer cur.Close(ctx)

	var partners []*domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode pending partner: %w", err)
		}
		partners = append(partners, mu.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending partners: %w", err)
	}
	return partners, nil
}

func (r *MongoAuthRepository) SetPartnerApproval(ctx context.Context, partnerID, adminID string, approved bool, at time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": partnerID, "registration_type": domain.RegistrationPartner},
		bson.M{"$set": bson.M{
			"admin_verified":    approved,
			"admin_verified_by": adminID,
			"admin_verified_at": at.Unix(),
			"updated_at":        at.Unix(),
		}},
	)
	if err != nil {
		return fmt.Errorf("set partner approval: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
