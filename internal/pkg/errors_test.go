package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("no poll with id: %s", "1")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(Validation("bad")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(State("locked")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(Internal("db", errors.New("x"))))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
}

func TestPublicMessageHidesInternals(t *testing.T) {
	origin := errors.New("dial tcp 10.0.0.1:3306: refused")
	err := fmt.Errorf("wrapped: %w", Internal("find comment", origin))

	assert.Equal(t, "Internal Server Error", PublicMessage(err))
	assert.ErrorIs(t, err, origin)
	assert.Equal(t, "no poll with id: 7", PublicMessage(NotFound("no poll with id: %s", "7")))
	assert.True(t, IsKind(err, KindInternal))
	assert.False(t, IsKind(nil, KindInternal))
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, EventPostRemoved, routingKey(PostRemoved{Event: EventPostRemoved}, "id"))
	assert.Equal(t, EventPollAdvanced, routingKey(PollChanged{Event: EventPollAdvanced}, "id"))
	assert.Equal(t, "id", routingKey(struct{}{}, "id"))
}
