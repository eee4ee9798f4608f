package user

import (
	"context"
	"testing"

	"quadralink/models"
	"quadralink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	users map[string]*models.User
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Create(ctx context.Context, u *models.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Update(ctx context.Context, u *models.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type memInstitutionRepo struct {
	institutions []models.Institution
}

func (r *memInstitutionRepo) GetByShortcode(ctx context.Context, shortcode string) (*models.Institution, error) {
	for i := range r.institutions {
		if r.institutions[i].Shortcode == shortcode {
			cp := r.institutions[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memInstitutionRepo) GetAll(ctx context.Context) ([]models.Institution, error) {
	return r.institutions, nil
}

func (r *memInstitutionRepo) Create(ctx context.Context, inst *models.Institution) error {
	r.institutions = append(r.institutions, *inst)
	return nil
}

func newTestUserService() (*DefaultUserService, *memUserRepo) {
	repo := &memUserRepo{users: make(map[string]*models.User)}
	institutions := &memInstitutionRepo{institutions: []models.Institution{
		{
			ID:           "inst-1",
			Name:         "University of Lagos",
			Shortcode:    "unilag",
			EmailPattern: `^\d{9}@live\.unilag\.edu\.ng$`,
		},
	}}
	return &DefaultUserService{Repo: repo, Institutions: institutions}, repo
}

func validRequest() RegisterRequest {
	return RegisterRequest{
		Firstname:            "Amina",
		Lastname:             "Bello",
		Email:                "190404016@live.unilag.edu.ng",
		Password:             "correct horse battery",
		InstitutionShortcode: "unilag",
	}
}

func TestRegister(t *testing.T) {
	svc, repo := newTestUserService()

	u, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, models.RoleStudent, u.Role)
	assert.Equal(t, "inst-1", u.InstitutionID)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "correct horse battery", u.PasswordHash)
	assert.Contains(t, repo.users, u.ID)
}

func TestRegisterRejectsUnknownInstitution(t *testing.T) {
	svc, _ := newTestUserService()

	req := validRequest()
	req.InstitutionShortcode = "nowhere"
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestRegisterEnforcesEmailPattern(t *testing.T) {
	svc, _ := newTestUserService()

	for _, email := range []string{
		"someone@gmail.com",
		"19040401@live.unilag.edu.ng",  // eight digits
		"190404016@live.unilag.edu.za", // wrong domain
	} {
		req := validRequest()
		req.Email = email
		_, err := svc.Register(context.Background(), req)
		require.Error(t, err, "email %q should be rejected", email)
		assert.True(t, IsValidation(err))
	}
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validRequest())
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "taken")
}

func TestRegisterRoleWhitelist(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	req := validRequest()
	req.Role = models.RoleCounselor
	u, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCounselor, u.Role)

	// Admin accounts are provisioned out of band, never self-registered.
	req = validRequest()
	req.Email = "190404017@live.unilag.edu.ng"
	req.Role = models.RoleAdmin
	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	u, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	resp, err := svc.Authenticate(ctx, u.Email, "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, u.ID, resp.ID)
	assert.Equal(t, u.Role, resp.Role)
	require.NotEmpty(t, resp.Token)

	subject, role, err := utils.ExtractClaimsFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, subject)
	assert.Equal(t, u.Role, role)
}

func TestAuthenticateFailures(t *testing.T) {
	svc, repo := newTestUserService()
	ctx := context.Background()

	u, err := svc.Register(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, u.Email, "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@live.unilag.edu.ng", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	repo.users[u.ID].IsBanned = true
	_, err = svc.Authenticate(ctx, u.Email, "correct horse battery")
	assert.ErrorIs(t, err, ErrAccountDisabled)

	repo.users[u.ID].IsBanned = false
	repo.users[u.ID].IsDeleted = true
	_, err = svc.Authenticate(ctx, u.Email, "correct horse battery")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}
