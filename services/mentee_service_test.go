package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mentorat/mentoring_backend/models"
)

func newMenteeFixture() (*mockMenteeRepo, *mockUserRepo, *MenteeService) {
	mentees := newMockMenteeRepo()
	users := newMockUserRepo()
	return mentees, users, NewMenteeService(mentees, users, zap.NewNop())
}

func seedUser(t *testing.T, users *mockUserRepo, name, email string) *models.User {
	t.Helper()
	user := &models.User{FullName: name, Email: email, Password: "hashed"}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatal(err)
	}
	return user
}

func TestCreateMenteeOwnProfileOnly(t *testing.T) {
	_, users, svc := newMenteeFixture()
	user := seedUser(t, users, "Ada", "ada@example.com")
	otherID := uuid.New()

	if _, err := svc.Create(context.Background(), Identity{UserID: user.ID}, CreateMenteeInput{UserID: &otherID}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign profile err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Create(context.Background(), Identity{UserID: user.ID}, CreateMenteeInput{}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("missing user_id err = %v, want ErrForbidden", err)
	}

	userID := user.ID
	mentee, err := svc.Create(context.Background(), Identity{UserID: user.ID}, CreateMenteeInput{UserID: &userID})
	if err != nil {
		t.Fatalf("own profile: %v", err)
	}
	if mentee.Status != models.MenteeStatusPending {
		t.Errorf("status = %q, want pending regardless of input", mentee.Status)
	}
}

func TestCreateMenteeDuplicateUser(t *testing.T) {
	_, users, svc := newMenteeFixture()
	user := seedUser(t, users, "Ada", "ada@example.com")
	userID := user.ID
	ctx := context.Background()

	if _, err := svc.Create(ctx, Identity{UserID: user.ID}, CreateMenteeInput{UserID: &userID}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, Identity{UserID: user.ID}, CreateMenteeInput{UserID: &userID}); !errors.Is(err, ErrMenteeExists) {
		t.Fatalf("second create err = %v, want ErrMenteeExists", err)
	}
	// Admins hit the same uniqueness rule.
	if _, err := svc.Create(ctx, admin(), CreateMenteeInput{UserID: &userID}); !errors.Is(err, ErrMenteeExists) {
		t.Fatalf("admin duplicate err = %v, want ErrMenteeExists", err)
	}
}

func TestListMenteesSkipsUnresolvableUsers(t *testing.T) {
	mentees, users, svc := newMenteeFixture()
	user := seedUser(t, users, "Ada", "ada@example.com")
	userID := user.ID
	ctx := context.Background()

	linked := &models.Mentee{UserID: &userID, Status: models.MenteeStatusAccepted}
	ghostUser := uuid.New()
	orphan := &models.Mentee{UserID: &ghostUser, Status: models.MenteeStatusPending}
	if err := mentees.Create(ctx, linked); err != nil {
		t.Fatal(err)
	}
	if err := mentees.Create(ctx, orphan); err != nil {
		t.Fatal(err)
	}

	listed, err := svc.List(ctx, admin())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("len = %d, want orphan skipped", len(listed))
	}
	if listed[0].User == nil || listed[0].User.Password != "" {
		t.Errorf("listed entry must embed the user with password cleared")
	}

	if _, err := svc.List(ctx, Identity{UserID: user.ID}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-admin list err = %v, want ErrForbidden", err)
	}
}

func TestGetMenteeByUserIDOwnership(t *testing.T) {
	mentees, users, svc := newMenteeFixture()
	user := seedUser(t, users, "Ada", "ada@example.com")
	userID := user.ID
	ctx := context.Background()

	profile := &models.Mentee{UserID: &userID, Status: models.MenteeStatusAccepted}
	if err := mentees.Create(ctx, profile); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.GetByUserID(ctx, Identity{UserID: user.ID}, user.ID); err != nil {
		t.Fatalf("self lookup: %v", err)
	}
	if _, err := svc.GetByUserID(ctx, Identity{UserID: uuid.New()}, user.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign lookup err = %v, want ErrForbidden", err)
	}
	if _, err := svc.GetByUserID(ctx, admin(), uuid.New()); !errors.Is(err, ErrMenteeNotFound) {
		t.Fatalf("missing profile err = %v, want ErrMenteeNotFound", err)
	}
}

func TestUpdateMenteeFieldsAndStatus(t *testing.T) {
	mentees, users, svc := newMenteeFixture()
	user := seedUser(t, users, "Ada", "ada@example.com")
	userID := user.ID
	ctx := context.Background()

	profile := &models.Mentee{UserID: &userID, Status: models.MenteeStatusPending}
	if err := mentees.Create(ctx, profile); err != nil {
		t.Fatal(err)
	}

	owner := Identity{UserID: user.ID}
	bio := "backend engineer"
	skills := []string{"go", "sql"}
	updated, err := svc.Update(ctx, owner, profile.ID, UpdateMenteeInput{Bio: &bio, SkillsToImprove: &skills})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Bio == nil || *updated.Bio != bio {
		t.Errorf("bio not updated: %v", updated.Bio)
	}
	if len(updated.SkillsToImprove) != 2 || updated.SkillsToImprove[0] != "go" {
		t.Errorf("skills not updated: %v", updated.SkillsToImprove)
	}

	accepted := models.MenteeStatusAccepted
	if _, err := svc.Update(ctx, owner, profile.ID, UpdateMenteeInput{Status: &accepted}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("owner status change err = %v, want ErrForbidden", err)
	}
	updated, err = svc.Update(ctx, admin(), profile.ID, UpdateMenteeInput{Status: &accepted})
	if err != nil {
		t.Fatalf("admin status change: %v", err)
	}
	if updated.Status != models.MenteeStatusAccepted {
		t.Errorf("status = %q, want accepted", updated.Status)
	}

	bogus := "greenlit"
	if _, err := svc.Update(ctx, admin(), profile.ID, UpdateMenteeInput{Status: &bogus}); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("bogus status err = %v, want ErrInvalidReference", err)
	}

	if _, err := svc.Update(ctx, Identity{UserID: uuid.New()}, profile.ID, UpdateMenteeInput{Bio: &bio}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger update err = %v, want ErrForbidden", err)
	}
}
