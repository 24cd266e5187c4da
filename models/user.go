package models

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/krysopath/pydis"
	"github.com/krysopath/pydis/codec"
	"github.com/krysopath/pydis/errors"
	"github.com/krysopath/pydis/store"
)

// PasswordCost is the bcrypt cost used for hashing the user passwords.
var PasswordCost = bcrypt.DefaultCost

// PasswordHasher is the user record hook that replaces the written password with its bcrypt hash.
var PasswordHasher = pydis.BeforeWriteFunc(hashPassword)

// UserSchema is the schema of the user records.
var UserSchema = pydis.MustSchema("User",
	pydis.Field("name", codec.Text),
	pydis.Field("email", codec.Text),
	pydis.Field("password", codec.Text),
	pydis.Child("friends", "friends", codec.Text),
)

// User is the record of the application user. The password is stored as the bcrypt hash.
type User struct {
	*pydis.Record
}

// NewUser creates new user record. If the 'email' is provided it is used as the user identity token
// and written into the 'email' field. The 'defaults' are written on creation, the password gets hashed.
func NewUser(ctx context.Context, s store.Store, email string, defaults map[string]interface{}, options ...pydis.Option) (*User, error) {
	values := map[string]interface{}{}
	for k, v := range defaults {
		values[k] = v
	}
	opts := []pydis.Option{pydis.WithBeforeWrite(PasswordHasher)}
	if email != "" {
		values["email"] = email
		opts = append(opts, pydis.WithID(email))
	}
	opts = append(opts, options...)
	opts = append(opts, pydis.WithDefaults(values))

	r, err := pydis.NewRecord(ctx, s, UserSchema, opts...)
	if err != nil {
		return nil, err
	}
	return &User{Record: r}, nil
}

// Friends gets the child sequence of the user friends.
func (u *User) Friends() *pydis.Sequence[string] {
	return pydis.AsChild(u, "friends", codec.Text)()
}

// Verify checks if the 'password' matches the stored password hash.
func (u *User) Verify(ctx context.Context, password string) (bool, error) {
	hashed, err := pydis.Get[string](ctx, u.Record, "password")
	if err != nil {
		return false, err
	}
	if hashed == "" {
		return false, nil
	}
	err = bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errors.Wrapf(pydis.ErrObject, "verifying password of: '%s' failed: %v", u.Identity(), err)
	}
}

func hashPassword(_ context.Context, key string, value interface{}) (interface{}, error) {
	if key != "password" {
		return value, nil
	}
	password, ok := value.(string)
	if !ok {
		return nil, errors.Wrapf(codec.ErrFieldValue, "password of type: '%T' is not a text", value)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return nil, errors.Wrapf(codec.ErrFieldValue, "hashing password failed: %v", err)
	}
	return string(hashed), nil
}
