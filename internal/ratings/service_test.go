package ratings

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"loocator/internal/store"
)

type toiletRow struct {
	average float64
	count   int
}

type fakeToilets struct {
	rows map[int64]*toiletRow
}

func (f *fakeToilets) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeToilets) SetRatingStats(_ context.Context, id int64, average float64, count int) error {
	row, ok := f.rows[id]
	if !ok {
		return store.ErrNotFound
	}
	row.average = average
	row.count = count
	return nil
}

type fakeRatings struct {
	nextID int64
	clock  time.Time
	rows   map[int64]*store.Rating
}

func newFakeRatings() *fakeRatings {
	return &fakeRatings{
		clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		rows:  make(map[int64]*store.Rating),
	}
}

func (f *fakeRatings) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeRatings) Create(_ context.Context, r *store.Rating) error {
	f.nextID++
	r.ID = f.nextID
	r.CreatedAt = f.tick()
	r.UpdatedAt = r.CreatedAt
	cp := *r
	f.rows[r.ID] = &cp
	return nil
}

func (f *fakeRatings) Update(_ context.Context, r *store.Rating) error {
	row, ok := f.rows[r.ID]
	if !ok {
		return store.ErrNotFound
	}
	row.Score = r.Score
	row.Comment = r.Comment
	row.UpdatedAt = f.tick()
	r.UpdatedAt = row.UpdatedAt
	return nil
}

func (f *fakeRatings) GetByID(_ context.Context, id int64) (*store.Rating, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeRatings) GetByToiletAndUser(_ context.Context, toiletID, userID int64) (*store.Rating, error) {
	for _, row := range f.rows {
		if row.ToiletID == toiletID && row.UserID == userID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeRatings) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeRatings) ListForToilet(_ context.Context, toiletID int64) ([]store.Rating, error) {
	var out []store.Rating
	for _, row := range f.rows {
		if row.ToiletID == toiletID {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRatings) ListAll(_ context.Context, limit, offset int) ([]store.Rating, int, error) {
	var out []store.Rating
	for _, row := range f.rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := len(out)
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeRatings) Stats(_ context.Context, toiletID int64) (int, float64, error) {
	var count int
	var sum int
	for _, row := range f.rows {
		if row.ToiletID == toiletID {
			count++
			sum += row.Score
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, float64(sum) / float64(count), nil
}

type fakeAdmins struct {
	admins map[int64]bool
}

func (f *fakeAdmins) IsAdmin(_ context.Context, id int64) (bool, error) {
	return f.admins[id], nil
}

func newTestService(toiletIDs ...int64) (*Service, *fakeRatings, *fakeToilets, *fakeAdmins) {
	toilets := &fakeToilets{rows: make(map[int64]*toiletRow)}
	for _, id := range toiletIDs {
		toilets.rows[id] = &toiletRow{}
	}
	ratings := newFakeRatings()
	admins := &fakeAdmins{admins: make(map[int64]bool)}
	return NewService(ratings, toilets, admins), ratings, toilets, admins
}

func TestSubmitValidation(t *testing.T) {
	svc, _, _, _ := newTestService(1)
	ctx := context.Background()

	tests := []struct {
		name    string
		in      SubmitInput
		wantErr error
	}{
		{"score too low", SubmitInput{ToiletID: 1, UserID: 7, Score: 0}, ErrInvalidScore},
		{"score too high", SubmitInput{ToiletID: 1, UserID: 7, Score: 6}, ErrInvalidScore},
		{"unauthenticated", SubmitInput{ToiletID: 1, UserID: 0, Score: 3}, ErrUnauthenticated},
		{"missing toilet", SubmitInput{ToiletID: 99, UserID: 7, Score: 3}, store.ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestSubmitRecomputesAverage(t *testing.T) {
	ctx := context.Background()

	for score := 1; score <= 5; score++ {
		svc, _, toilets, _ := newTestService(1)

		if _, err := svc.Submit(ctx, SubmitInput{ToiletID: 1, UserID: 7, Score: score}); err != nil {
			t.Fatalf("submit score %d: %v", score, err)
		}

		row := toilets.rows[1]
		if row.count != 1 || row.average != float64(score) {
			t.Fatalf("score %d: got average=%v count=%d", score, row.average, row.count)
		}
	}
}

func TestSubmitAverageRoundsToOneDecimal(t *testing.T) {
	svc, _, toilets, _ := newTestService(1)
	ctx := context.Background()

	// 4, 4, 5 → mean 4.333… → 4.3
	for i, score := range []int{4, 4, 5} {
		if _, err := svc.Submit(ctx, SubmitInput{ToiletID: 1, UserID: int64(i + 1), Score: score}); err != nil {
			t.Fatal(err)
		}
	}

	if got := toilets.rows[1].average; got != 4.3 {
		t.Fatalf("got average %v, want 4.3", got)
	}
}

func TestSubmitIsUpsert(t *testing.T) {
	svc, ratings, toilets, _ := newTestService(1)
	ctx := context.Background()

	first, err := svc.Submit(ctx, SubmitInput{ToiletID: 1, UserID: 7, Score: 2, Comment: "grim"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Submit(ctx, SubmitInput{ToiletID: 1, UserID: 7, Score: 5, Comment: "renovated"})
	if err != nil {
		t.Fatal(err)
	}

	if len(ratings.rows) != 1 {
		t.Fatalf("got %d ratings for (user, toilet), want 1", len(ratings.rows))
	}
	if second.ID != first.ID {
		t.Fatalf("update created a new rating: %d != %d", second.ID, first.ID)
	}
	if second.Score != 5 || second.Comment != "renovated" {
		t.Fatalf("second submit did not win: %+v", second)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("update must keep the original creation time")
	}
	if row := toilets.rows[1]; row.average != 5 || row.count != 1 {
		t.Fatalf("got average=%v count=%d, want 5 and 1", row.average, row.count)
	}
}

func TestRecomputeZeroRatings(t *testing.T) {
	svc, _, toilets, _ := newTestService(1)

	stats, err := svc.Recompute(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Average != 0 || stats.Count != 0 {
		t.Fatalf("got %+v, want zero stats", stats)
	}
	if row := toilets.rows[1]; row.average != 0 || row.count != 0 {
		t.Fatalf("toilet row not zeroed: %+v", row)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	svc, _, _, _ := newTestService(1)
	ctx := context.Background()

	for _, score := range []int{3, 4} {
		if _, err := svc.Submit(ctx, SubmitInput{ToiletID: 1, UserID: int64(score), Score: score}); err != nil {
			t.Fatal(err)
		}
	}

	first, err := svc.Recompute(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Recompute(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("recompute not idempotent: %+v vs %+v", first, second)
	}
}

func TestDeleteAuthorization(t *testing.T) {
	svc, ratings, _, _ := newTestService(1)
	ctx := context.Background()

	r, err := svc.Submit(ctx, SubmitInput{ToiletID: 1, UserID: 7, Score: 4})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, r.ID, 8); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("got %v, want ErrNotOwner", err)
	}

	// The rating must be untouched after the failed delete.
	got, err := ratings.GetByID(ctx, r.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Score != 4 || got.UserID != 7 {
		t.Fatalf("rating changed after denied delete: %+v", got)
	}

	if err := svc.Delete(ctx, r.ID, 0); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("got %v, want ErrUnauthenticated", err)
	}

	if err := svc.Delete(ctx, r.ID, 7); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if err := svc.Delete(ctx, r.ID, 7); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound for missing rating", err)
	}
}

func TestDeleteByAdmin(t *testing.T) {
	svc, _, toilets, admins := newTestService(1)
	admins.admins[100] = true
	ctx := context.Background()

	r, err := svc.Submit(ctx, SubmitInput{ToiletID: 1, UserID: 7, Score: 4})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, r.ID, 100); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if row := toilets.rows[1]; row.average != 0 || row.count != 0 {
		t.Fatalf("aggregate not recomputed after delete: %+v", row)
	}
}

func TestListForToiletNewestFirst(t *testing.T) {
	svc, _, _, _ := newTestService(1)
	ctx := context.Background()

	for _, userID := range []int64{1, 2, 3} {
		if _, err := svc.Submit(ctx, SubmitInput{ToiletID: 1, UserID: userID, Score: 3}); err != nil {
			t.Fatal(err)
		}
	}

	list, err := svc.ListForToilet(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d ratings, want 3", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Fatal("ratings not ordered newest first")
		}
	}
	if list[0].UserID != 3 {
		t.Fatalf("newest rating first: got user %d", list[0].UserID)
	}
}

func TestRatingLifecycle(t *testing.T) {
	svc, _, toilets, admins := newTestService(1)
	admins.admins[100] = true
	ctx := context.Background()

	check := func(step string, average float64, count int) {
		t.Helper()
		row := toilets.rows[1]
		if row.average != average || row.count != count {
			t.Fatalf("%s: got average=%v count=%d, want %v and %d", step, row.average, row.count, average, count)
		}
	}

	if _, err := svc.Submit(ctx, SubmitInput{ToiletID: 1, UserID: 1, UserName: "A", Score: 4}); err != nil {
		t.Fatal(err)
	}
	check("after A submits 4", 4.0, 1)

	b, err := svc.Submit(ctx, SubmitInput{ToiletID: 1, UserID: 2, UserName: "B", Score: 5})
	if err != nil {
		t.Fatal(err)
	}
	check("after B submits 5", 4.5, 2)

	if _, err := svc.Submit(ctx, SubmitInput{ToiletID: 1, UserID: 1, UserName: "A", Score: 2}); err != nil {
		t.Fatal(err)
	}
	check("after A edits to 2", 3.5, 2)

	if err := svc.Delete(ctx, b.ID, 100); err != nil {
		t.Fatal(err)
	}
	check("after admin deletes B", 2.0, 1)
}
