package service

import (
	"context"
	"testing"
	"time"

	"IT_Hub/internal/model"
	"IT_Hub/internal/pkg"
	"IT_Hub/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pollNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func newPolls(t *testing.T) (*PollService, *memory.PollRepository, *fakePublisher) {
	t.Helper()
	repo := memory.NewStore().Polls()
	events := &fakePublisher{}
	svc := NewPollService(repo, events, nil).WithClock(func() time.Time { return pollNow })
	return svc, repo, events
}

func TestCreatePoll(t *testing.T) {
	svc, _, events := newPolls(t)

	p, err := svc.Create(context.Background(), PollInput{
		Topic: "club lead", Description: "vote", Restriction: "seniors",
		ExpireTimeHours: f64(2), StartTimeHours: f64(1),
	})
	require.NoError(t, err)
	assert.Equal(t, model.PhaseInitial, p.Phase)
	assert.Equal(t, pollNow, p.CreatedAt)
	assert.Equal(t, pollNow.Add(time.Hour), p.StartsAt)
	assert.Equal(t, pollNow.Add(3*time.Hour), p.ExpiresAt)
	assert.NotEmpty(t, p.ID)
	require.Len(t, events.events, 1)
	assert.Equal(t, pkg.EventPollCreated, events.events[0].(pkg.PollChanged).Event)
}

func TestCreatePollStartDefaults(t *testing.T) {
	svc, _, _ := newPolls(t)

	for _, start := range []*float64{nil, f64(-3)} {
		p, err := svc.Create(context.Background(), PollInput{Topic: "t", Description: "d", ExpireTimeHours: f64(1), StartTimeHours: start})
		require.NoError(t, err)
		assert.Equal(t, pollNow, p.StartsAt)
		assert.Equal(t, pollNow.Add(time.Hour), p.ExpiresAt)
	}
}

func TestCreatePollValidation(t *testing.T) {
	svc, _, _ := newPolls(t)
	cases := map[string]PollInput{
		"no topic":       {Description: "d", ExpireTimeHours: f64(1)},
		"no description": {Topic: "t", ExpireTimeHours: f64(1)},
		"no expire":      {Topic: "t", Description: "d"},
		"expire at 0.5":  {Topic: "t", Description: "d", ExpireTimeHours: f64(0.5)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), in)
			require.Error(t, err)
			assert.True(t, pkg.IsKind(err, pkg.KindValidation))
			assert.Equal(t, MsgCreateInvalid, pkg.PublicMessage(err))
		})
	}

	_, err := svc.Create(context.Background(), PollInput{Topic: "t", Description: "d", ExpireTimeHours: f64(0.51)})
	assert.NoError(t, err)
}

func TestAdvanceToVoting(t *testing.T) {
	svc, repo, events := newPolls(t)
	require.NoError(t, repo.Create(context.Background(), &model.Poll{
		ID: "p1", Topic: "old", Phase: model.PhaseInitial,
		StartsAt: pollNow.Add(-3 * time.Hour), ExpiresAt: pollNow.Add(-time.Hour), CreatedAt: pollNow.Add(-3 * time.Hour),
	}))

	p, err := svc.AdvanceToVoting(context.Background(), "p1", PollInput{
		Topic: "final round", Restriction: "r", ExpireTimeHours: f64(0.5),
	})
	require.NoError(t, err)
	assert.Equal(t, model.PhaseFinal, p.Phase)
	assert.Equal(t, "final round", p.Topic)
	assert.Equal(t, pollNow, p.StartsAt)
	assert.Equal(t, pollNow.Add(30*time.Minute), p.ExpiresAt)

	stored, err := repo.FindByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, model.PhaseFinal, stored.Phase)
	require.Len(t, events.events, 1)
	assert.Equal(t, pkg.EventPollAdvanced, events.events[0].(pkg.PollChanged).Event)
}

func TestAdvanceToVotingErrors(t *testing.T) {
	svc, repo, _ := newPolls(t)
	ctx := context.Background()
	valid := PollInput{Topic: "t", ExpireTimeHours: f64(1)}

	_, err := svc.AdvanceToVoting(ctx, "missing", valid)
	assert.True(t, pkg.IsKind(err, pkg.KindNotFound))

	// 报名进行中
	require.NoError(t, repo.Create(ctx, &model.Poll{ID: "active", Phase: model.PhaseInitial,
		StartsAt: pollNow.Add(-time.Hour), ExpiresAt: pollNow.Add(time.Hour)}))
	_, err = svc.AdvanceToVoting(ctx, "active", valid)
	assert.True(t, pkg.IsKind(err, pkg.KindState))
	assert.Equal(t, MsgPollLocked, pkg.PublicMessage(err))

	// 倒置窗口
	require.NoError(t, repo.Create(ctx, &model.Poll{ID: "inverted", Phase: model.PhaseInitial,
		StartsAt: pollNow.Add(time.Hour), ExpiresAt: pollNow.Add(-time.Hour)}))
	_, err = svc.AdvanceToVoting(ctx, "inverted", valid)
	assert.True(t, pkg.IsKind(err, pkg.KindState))

	require.NoError(t, repo.Create(ctx, &model.Poll{ID: "done", Phase: model.PhaseFinal, IsCompleted: true,
		StartsAt: pollNow.Add(-2 * time.Hour), ExpiresAt: pollNow.Add(-time.Hour)}))
	_, err = svc.AdvanceToVoting(ctx, "done", valid)
	assert.True(t, pkg.IsKind(err, pkg.KindState))

	// 投票窗口已过但尚未被扫描标记完成
	elapsed := &model.Poll{ID: "elapsed", Topic: "kept", Phase: model.PhaseFinal,
		StartsAt: pollNow.Add(-2 * time.Hour), ExpiresAt: pollNow.Add(-time.Hour)}
	require.NoError(t, repo.Create(ctx, elapsed))
	_, err = svc.AdvanceToVoting(ctx, "elapsed", valid)
	assert.True(t, pkg.IsKind(err, pkg.KindState))
	assert.Equal(t, MsgPollInVoting, pkg.PublicMessage(err))
	stored, _ := repo.FindByID(ctx, "elapsed")
	assert.Equal(t, "kept", stored.Topic)
	assert.Equal(t, pollNow.Add(-time.Hour), stored.ExpiresAt)

	require.NoError(t, repo.Create(ctx, &model.Poll{ID: "closed", Phase: model.PhaseInitial,
		StartsAt: pollNow.Add(-2 * time.Hour), ExpiresAt: pollNow.Add(-time.Hour)}))
	for _, in := range []PollInput{
		{ExpireTimeHours: f64(1)},
		{Topic: "t"},
		{Topic: "t", ExpireTimeHours: f64(0.49)},
	} {
		_, err = svc.AdvanceToVoting(ctx, "closed", in)
		assert.True(t, pkg.IsKind(err, pkg.KindValidation))
	}

	stored, _ = repo.FindByID(ctx, "closed")
	assert.Equal(t, model.PhaseInitial, stored.Phase)
}

func TestPollQueries(t *testing.T) {
	svc, repo, _ := newPolls(t)
	ctx := context.Background()
	seed := []model.Poll{
		{ID: "a", Phase: model.PhaseInitial, CreatedAt: pollNow.Add(-4 * time.Hour), ExpiresAt: pollNow.Add(-time.Hour)},
		{ID: "b", Phase: model.PhaseInitial, CreatedAt: pollNow.Add(-3 * time.Hour), ExpiresAt: pollNow.Add(time.Hour)},
		{ID: "c", Phase: model.PhaseFinal, CreatedAt: pollNow.Add(-2 * time.Hour), ExpiresAt: pollNow.Add(-time.Minute)},
		{ID: "d", Phase: model.PhaseFinal, CreatedAt: pollNow.Add(-time.Hour), ExpiresAt: pollNow.Add(time.Hour), IsCompleted: true},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	ids := func(list []model.Poll) []string {
		out := make([]string, 0, len(list))
		for _, p := range list {
			out = append(out, p.ID)
		}
		return out
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(all))

	initial, err := svc.List(ctx, model.PhaseInitial)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(initial))

	final, err := svc.List(ctx, model.PhaseFinal)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, ids(final))

	_, err = svc.List(ctx, "bogus")
	assert.True(t, pkg.IsKind(err, pkg.KindValidation))

	updateable, err := svc.ListUpdateable(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(updateable))

	completed, err := svc.ListCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, ids(completed))

	n, err := svc.CompleteElapsed(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	completed, err = svc.ListCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, ids(completed))
}
