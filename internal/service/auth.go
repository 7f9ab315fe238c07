package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
	"github.com/pawtime-dev/pawtime/internal/jwt"
	"github.com/pawtime-dev/pawtime/internal/logger"
)

type UserStorage interface {
	SaveUser(email domain.Email, nick string, passHash []byte) (domain.UserId, error)
	User(email domain.Email) (domain.User, error)
	UserById(id domain.UserId) (domain.User, error)
}

type Auth struct {
	storage    UserStorage
	jwt        jwt.Service
	bcryptCost int
}

func NewAuth(storage UserStorage, jwtService jwt.Service, bcryptCost int) *Auth {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Auth{storage: storage, jwt: jwtService, bcryptCost: bcryptCost}
}

func (s *Auth) Register(email domain.Email, nick string, password domain.Password) (domain.UserId, error) {
	passHash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return 0, internal_errors.New(internal_errors.Internal, "Can't process registration")
	}

	id, err := s.storage.SaveUser(email, nick, passHash)
	if err != nil {
		return 0, err
	}
	logger.Log.Info("user registered", "user_id", id)
	return id, nil
}

// Login deliberately reports the same error for an unknown email and for a
// wrong password.
func (s *Auth) Login(creds domain.Credentials) (string, error) {
	user, err := s.storage.User(creds.Email)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return "", internal_errors.New(internal_errors.Unauthenticated, "Invalid email or password")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PassHash, []byte(creds.Password)); err != nil {
		return "", internal_errors.New(internal_errors.Unauthenticated, "Invalid email or password")
	}

	return s.jwt.NewToken(user)
}
