package control

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"studio/admin/errs"
	"studio/admin/model"
	"studio/admin/system"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := system.Open(dsn, 4, 2)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := system.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreatePublisher(t *testing.T, db *gorm.DB, name string) int32 {
	t.Helper()
	ctl := NewPublisherControl(db)
	err := ctl.Create(context.Background(), NewPublisher{
		Name:       name,
		Price:      decimal.RequireFromString("49.99"),
		Popularity: 7,
	})
	if err != nil {
		t.Fatalf("create publisher: %v", err)
	}
	views, err := ctl.List(context.Background())
	if err != nil {
		t.Fatalf("list publishers: %v", err)
	}
	return views[len(views)-1].ID
}

func mustCreateGame(t *testing.T, db *gorm.DB, name string, publisherID int32) int32 {
	t.Helper()
	ctl := NewGameControl(db)
	err := ctl.Create(context.Background(), NewGame{
		Name:        name,
		Genre:       "rpg",
		ReleaseDate: "2003-05-20",
		PrimeCost:   decimal.RequireFromString("1000.00"),
		PublisherID: publisherID,
		Cost:        decimal.RequireFromString("59.99"),
	})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	views, err := ctl.List(context.Background())
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	return views[len(views)-1].ID
}

func mustCreateUser(t *testing.T, db *gorm.DB, nickname string) int32 {
	t.Helper()
	ctl := NewUserControl(db)
	err := ctl.Create(context.Background(), NewUser{
		Nickname:         nickname,
		RegistrationDate: "2002-01-10",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	views, err := ctl.List(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	return views[len(views)-1].ID
}

func mustDonate(t *testing.T, db *gorm.DB, userID, gameID int32, amount string) {
	t.Helper()
	err := NewDonationControl(db).Create(context.Background(), NewDonation{
		UserID:       userID,
		GameID:       gameID,
		Amount:       decimal.RequireFromString(amount),
		DonationTime: "2004-07-01T12:30",
	})
	if err != nil {
		t.Fatalf("create donation: %v", err)
	}
}

func TestPublisherCRUD(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	ctl := NewPublisherControl(db)

	first := mustCreatePublisher(t, db, "Alpha")
	second := mustCreatePublisher(t, db, "Beta")

	views, err := ctl.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 || views[0].ID != first || views[1].ID != second {
		t.Fatalf("list not ordered by id: %+v", views)
	}
	if !views[0].Price.Equal(decimal.RequireFromString("49.99")) {
		t.Fatalf("price = %s, want 49.99", views[0].Price)
	}

	err = ctl.Update(ctx, first, NewPublisher{
		Name:       "Alpha Prime",
		Price:      decimal.RequireFromString("10.50"),
		Popularity: 9,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := ctl.GetByID(ctx, first)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Alpha Prime" || got.Popularity != 9 {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := ctl.Delete(ctx, second); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := ctl.GetByID(ctx, second); !errs.IsNotFound(err) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestGetMissingRow(t *testing.T) {
	db := testDB(t)
	if _, err := NewPublisherControl(db).GetByID(context.Background(), 999); !errs.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if err := NewPublisherControl(db).Delete(context.Background(), 999); !errs.IsNotFound(err) {
		t.Fatalf("expected not-found on delete, got %v", err)
	}
	if err := NewPublisherControl(db).Update(context.Background(), 999, NewPublisher{Name: "x"}); !errs.IsNotFound(err) {
		t.Fatalf("expected not-found on update, got %v", err)
	}
}

func TestGameViewResolvesPublisher(t *testing.T) {
	db := testDB(t)
	pubID := mustCreatePublisher(t, db, "Alpha")
	gameID := mustCreateGame(t, db, "Quest", pubID)

	game, err := NewGameControl(db).GetByID(context.Background(), gameID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if game.Publisher != "Alpha" {
		t.Fatalf("publisher = %q, want Alpha", game.Publisher)
	}
	if game.ReleaseDate != "20-05-2003" {
		t.Fatalf("release date = %q, want 20-05-2003", game.ReleaseDate)
	}
}

func TestGameInvalidDate(t *testing.T) {
	db := testDB(t)
	pubID := mustCreatePublisher(t, db, "Alpha")
	err := NewGameControl(db).Create(context.Background(), NewGame{
		Name:        "Quest",
		ReleaseDate: "20-05-2003",
		PublisherID: pubID,
	})
	if !errors.Is(err, errs.ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
	games, err := NewGameControl(db).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("rejected create must not insert, got %d rows", len(games))
	}
}

func TestJobForeignKeyViolation(t *testing.T) {
	db := testDB(t)
	err := NewJobControl(db).Create(context.Background(), NewJob{
		GameID:       42,
		StaffID:      43,
		Position:     "tester",
		FirstWorkDay: "2003-01-01",
		Salary:       decimal.RequireFromString("100.00"),
	})
	var fk *errs.ForeignKeyError
	if !errors.As(err, &fk) {
		t.Fatalf("expected foreign key error, got %v", err)
	}
	jobs, err := NewJobControl(db).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("violating create must not insert, got %d rows", len(jobs))
	}
}

func TestJobNullLastWorkDay(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	pubID := mustCreatePublisher(t, db, "Alpha")
	gameID := mustCreateGame(t, db, "Quest", pubID)

	staffCtl := NewStaffControl(db)
	if err := staffCtl.Create(ctx, NewStaff{Name: "Mira", Birth: "2000-04-04"}); err != nil {
		t.Fatalf("create staff: %v", err)
	}
	staff, err := staffCtl.List(ctx)
	if err != nil {
		t.Fatalf("list staff: %v", err)
	}

	jobCtl := NewJobControl(db)
	err = jobCtl.Create(ctx, NewJob{
		GameID:       gameID,
		StaffID:      staff[0].ID,
		Position:     "artist",
		FirstWorkDay: "2003-02-01",
		Salary:       decimal.RequireFromString("2500.00"),
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	jobs, err := jobCtl.List(ctx)
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if jobs[0].LastWorkDay != "" {
		t.Fatalf("open-ended job must display empty last work day, got %q", jobs[0].LastWorkDay)
	}
	if jobs[0].FirstWorkDay != "01-02-2003" {
		t.Fatalf("first work day = %q", jobs[0].FirstWorkDay)
	}
	if jobs[0].Game != "Quest" || jobs[0].Staff != "Mira" {
		t.Fatalf("names not resolved: %+v", jobs[0])
	}
}

func TestListReportsMissingReference(t *testing.T) {
	// Open without the foreign_keys pragma so a dangling row can exist,
	// the way legacy data might after a manual delete.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := system.Open(dsn, 4, 2)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := system.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	orphan := model.Game{Name: "Orphan", Genre: "rpg", ReleaseDate: 1, PublisherID: 777}
	if err := db.Create(&orphan).Error; err != nil {
		t.Fatalf("insert dangling game: %v", err)
	}

	_, err = NewGameControl(db).List(context.Background())
	var ref *errs.MissingReferenceError
	if !errors.As(err, &ref) {
		t.Fatalf("expected missing reference error, got %v", err)
	}
	if ref.Entity != "publisher" || ref.ID != 777 {
		t.Fatalf("wrong reference reported: %+v", ref)
	}

	if _, err := NewGameControl(db).GetByID(context.Background(), orphan.ID); !errors.As(err, &ref) {
		t.Fatalf("get must report the dangling reference too, got %v", err)
	}
}

func TestGameDonorTotals(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	pubID := mustCreatePublisher(t, db, "Alpha")
	gameID := mustCreateGame(t, db, "Quest", pubID)
	otherID := mustCreateGame(t, db, "Other", pubID)

	ann := mustCreateUser(t, db, "Ann")
	bob := mustCreateUser(t, db, "Bob")
	mustDonate(t, db, ann, gameID, "10.00")
	mustDonate(t, db, ann, gameID, "25.50")
	mustDonate(t, db, bob, gameID, "5.00")
	mustDonate(t, db, bob, otherID, "99.00")

	totals, grand, err := NewGameControl(db).TotalDonations(ctx, gameID)
	if err != nil {
		t.Fatalf("total donations: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 donors, got %d", len(totals))
	}
	if totals[0].User != "Ann" || !totals[0].Amount.Equal(decimal.RequireFromString("35.50")) {
		t.Fatalf("Ann total = %+v", totals[0])
	}
	if totals[1].User != "Bob" || !totals[1].Amount.Equal(decimal.RequireFromString("5.00")) {
		t.Fatalf("Bob total = %+v", totals[1])
	}
	if !grand.Equal(decimal.RequireFromString("40.50")) {
		t.Fatalf("grand total = %s, want 40.50", grand)
	}
}

func TestGameStatisticsBundle(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	pubID := mustCreatePublisher(t, db, "Alpha")
	gameID := mustCreateGame(t, db, "Quest", pubID)
	ann := mustCreateUser(t, db, "Ann")
	mustDonate(t, db, ann, gameID, "10.00")

	invCtl := NewInvestorControl(db)
	if err := invCtl.Create(ctx, NewInvestor{Name: "Fund", IsCompany: true}); err != nil {
		t.Fatalf("create investor: %v", err)
	}
	investors, err := invCtl.List(ctx)
	if err != nil {
		t.Fatalf("list investors: %v", err)
	}
	err = NewInvestmentControl(db).Create(ctx, NewInvestment{
		GameID:     gameID,
		InvestorID: investors[0].ID,
		Share:      25,
		Invested:   decimal.RequireFromString("5000.00"),
	})
	if err != nil {
		t.Fatalf("create investment: %v", err)
	}

	stats, err := NewGameControl(db).Statistics(ctx, gameID)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.ID != gameID {
		t.Fatalf("stats id = %d", stats.ID)
	}
	if len(stats.Donations) != 1 || len(stats.Investments) != 1 || len(stats.Staff) != 0 {
		t.Fatalf("bundle sizes off: %+v", stats)
	}
	if len(stats.TotalDonations) != 1 || !stats.Total.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("donor totals off: %+v", stats.TotalDonations)
	}

	if _, err := NewGameControl(db).Statistics(ctx, 999); !errs.IsNotFound(err) {
		t.Fatalf("expected not-found for missing game, got %v", err)
	}
}

func TestPublisherStatistics(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	pubID := mustCreatePublisher(t, db, "Alpha")
	otherID := mustCreatePublisher(t, db, "Beta")
	mustCreateGame(t, db, "Quest", pubID)
	mustCreateGame(t, db, "Saga", pubID)
	mustCreateGame(t, db, "Solo", otherID)

	stats, err := NewPublisherControl(db).Statistics(ctx, pubID)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if len(stats.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(stats.Games))
	}
}

func TestChangeDateFormat(t *testing.T) {
	v := GameView{ReleaseDate: "20-05-2003"}
	if err := v.ChangeDateFormat("02-01-2006", "2006-01-02"); err != nil {
		t.Fatalf("change format: %v", err)
	}
	if v.ReleaseDate != "2003-05-20" {
		t.Fatalf("release date = %q", v.ReleaseDate)
	}

	// A mismatched layout must fail without touching the view.
	bad := GameView{ReleaseDate: "2003-05-20"}
	if err := bad.ChangeDateFormat("02-01-2006", "2006-01-02"); !errors.Is(err, errs.ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
	if bad.ReleaseDate != "2003-05-20" {
		t.Fatalf("failed conversion mutated the view: %q", bad.ReleaseDate)
	}
}
