package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ashgrove-backend/internal/domain/content"
	"ashgrove-backend/internal/domain/enquiry"
	"ashgrove-backend/internal/domain/uow"
	"ashgrove-backend/internal/domain/user"
	"ashgrove-backend/internal/infrastructure/db"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestUoW_RollsBackOnError(t *testing.T) {
	gdb := openTestDB(t)
	u := NewGormUoW(gdb)
	ctx := context.Background()

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Customers.Create(ctx, &enquiry.Customer{
			CustomerID:  "c1",
			QuoteNumber: "Q2530001",
			FirstName:   "Aoife",
			Email:       "aoife@example.com",
			Status:      enquiry.StatusActive,
		}); err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	if err == nil {
		t.Fatal("want error")
	}

	var count int64
	gdb.Model(&enquiry.Customer{}).Count(&count)
	if count != 0 {
		t.Fatalf("customers after rollback = %d, want 0", count)
	}
}

func TestUoW_CommitsAllWrites(t *testing.T) {
	gdb := openTestDB(t)
	u := NewGormUoW(gdb)
	ctx := context.Background()

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		c := &enquiry.Customer{
			CustomerID:  "c1",
			QuoteNumber: "Q2530001",
			FirstName:   "Aoife",
			Email:       "aoife@example.com",
			Status:      enquiry.StatusActive,
		}
		if err := r.Customers.Create(ctx, c); err != nil {
			return err
		}
		if err := r.Notes.Create(ctx, &enquiry.Note{CustomerID: c.ID, Body: "site visit", CreatedBy: "enquiry-form"}); err != nil {
			return err
		}
		return r.Submissions.Create(ctx, &enquiry.Submission{SubmissionID: "s1", Payload: "{}"})
	})
	if err != nil {
		t.Fatalf("WithinTx err: %v", err)
	}

	for _, tc := range []struct {
		model any
		want  int64
	}{
		{&enquiry.Customer{}, 1},
		{&enquiry.Note{}, 1},
		{&enquiry.Submission{}, 1},
	} {
		var count int64
		gdb.Model(tc.model).Count(&count)
		if count != tc.want {
			t.Fatalf("count(%T) = %d, want %d", tc.model, count, tc.want)
		}
	}
}

func TestCustomerRepository_GetLatestForUpdate(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewCustomerRepository(gdb)
	ctx := context.Background()

	if _, err := repo.GetLatestForUpdate(ctx); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("empty table err = %v, want ErrRecordNotFound", err)
	}

	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, qn := range []string{"Q2530001", "Q2530002", "Q2530003"} {
		c := &enquiry.Customer{
			CustomerID:  qn + "-cust",
			QuoteNumber: qn,
			FirstName:   "Test",
			Email:       qn + "@example.com",
			Status:      enquiry.StatusActive,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("create %s: %v", qn, err)
		}
	}

	latest, err := repo.GetLatestForUpdate(ctx)
	if err != nil {
		t.Fatalf("GetLatestForUpdate err: %v", err)
	}
	if latest.QuoteNumber != "Q2530003" {
		t.Fatalf("latest = %q, want Q2530003", latest.QuoteNumber)
	}
}

func TestSubmissionRepository_ListAndFilter(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewSubmissionRepository(gdb)
	ctx := context.Background()

	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	rows := []enquiry.Submission{
		{SubmissionID: "s1", Payload: "{}", SourcePageSlug: "garden-rooms", CreatedAt: base},
		{SubmissionID: "s2", Payload: "{}", SourcePageSlug: "two-bed", CreatedAt: base.Add(time.Hour)},
		{SubmissionID: "s3", Payload: "{}", SourcePageSlug: "garden-rooms", CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range rows {
		if err := repo.Create(ctx, &rows[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := repo.List(ctx, enquiry.SubmissionFilter{})
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(all) != 3 || all[0].SubmissionID != "s3" || all[2].SubmissionID != "s1" {
		t.Fatalf("order = %v", ids(all))
	}

	since := base.Add(30 * time.Minute)
	recent, err := repo.List(ctx, enquiry.SubmissionFilter{Since: &since})
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("since filter = %v", ids(recent))
	}

	bySlug, err := repo.List(ctx, enquiry.SubmissionFilter{SourcePageSlug: "garden-rooms"})
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(bySlug) != 2 || bySlug[0].SubmissionID != "s3" {
		t.Fatalf("slug filter = %v", ids(bySlug))
	}

	paged, err := repo.List(ctx, enquiry.SubmissionFilter{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(paged) != 1 || paged[0].SubmissionID != "s2" {
		t.Fatalf("paging = %v", ids(paged))
	}
}

func ids(rows []enquiry.Submission) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.SubmissionID
	}
	return out
}

func TestSubmissionRepository_UpdateEmailLog(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewSubmissionRepository(gdb)
	ctx := context.Background()

	if err := repo.Create(ctx, &enquiry.Submission{SubmissionID: "s1", Payload: "{}"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	raw := `{"internal":{"status":"success","attempts":1}}`
	if err := repo.UpdateEmailLog(ctx, "s1", raw); err != nil {
		t.Fatalf("UpdateEmailLog err: %v", err)
	}

	got, err := repo.GetBySubmissionID(ctx, "s1")
	if err != nil {
		t.Fatalf("GetBySubmissionID err: %v", err)
	}
	if got.EmailLog == nil || *got.EmailLog != raw {
		t.Fatalf("email log = %v", got.EmailLog)
	}

	if err := repo.UpdateEmailLog(ctx, "missing", raw); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing row err = %v, want ErrRecordNotFound", err)
	}
}

func TestPageRepository_CRUD(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewPageRepository(gdb)
	ctx := context.Background()

	p := &content.Page{Slug: "garden-rooms", Title: "Garden Rooms", Body: "...", Published: true}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, &content.Page{Slug: "about", Title: "About"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetBySlug(ctx, "garden-rooms")
	if err != nil || got.Title != "Garden Rooms" {
		t.Fatalf("GetBySlug = %+v, %v", got, err)
	}

	published, err := repo.List(ctx, true)
	if err != nil || len(published) != 1 {
		t.Fatalf("List(published) = %v, %v", published, err)
	}
	all, err := repo.List(ctx, false)
	if err != nil || len(all) != 2 {
		t.Fatalf("List(all) = %v, %v", all, err)
	}

	got.Title = "Garden Rooms & Studios"
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, _ := repo.GetByID(ctx, got.ID)
	if again.Title != "Garden Rooms & Studios" {
		t.Fatalf("title = %q", again.Title)
	}

	if err := repo.Delete(ctx, got.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, got.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("after delete err = %v", err)
	}
}

func TestGalleryRepository_SortOrder(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewGalleryRepository(gdb)
	ctx := context.Background()

	for _, g := range []content.GalleryItem{
		{Title: "c", ImageURL: "/c.jpg", AltText: "c", Published: true, SortOrder: 3},
		{Title: "a", ImageURL: "/a.jpg", AltText: "a", Published: true, SortOrder: 1},
		{Title: "b", ImageURL: "/b.jpg", AltText: "b", Published: false, SortOrder: 2},
	} {
		item := g
		if err := repo.Create(ctx, &item); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	published, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(published) != 2 || published[0].Title != "a" || published[1].Title != "c" {
		t.Fatalf("published = %+v", published)
	}
}

func TestRedirectRepository_GetBySourceSlug(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewRedirectRepository(gdb)
	ctx := context.Background()

	if err := repo.Create(ctx, &content.Redirect{SourceSlug: "old-gallery", DestinationURL: "/gallery", Permanent: true}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetBySourceSlug(ctx, "old-gallery")
	if err != nil || got.DestinationURL != "/gallery" {
		t.Fatalf("GetBySourceSlug = %+v, %v", got, err)
	}
	if _, err := repo.GetBySourceSlug(ctx, "nope"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestUserRepository(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	u := &user.User{Email: "admin@ashgrove.ie", PasswordHash: "hash", Roles: "admin"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "admin@ashgrove.ie")
	if err != nil || got.ID != u.ID {
		t.Fatalf("GetByEmail = %+v, %v", got, err)
	}

	now := time.Now().UTC()
	got.LastLoginAt = &now
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, _ := repo.GetByEmail(ctx, "admin@ashgrove.ie")
	if again.LastLoginAt == nil {
		t.Fatal("last login not persisted")
	}
}
