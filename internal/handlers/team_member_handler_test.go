package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTeamMember(t *testing.T, env *testEnv, token string) map[string]any {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/team-members", token, gin.H{
		"firstName": "Riley",
		"lastName":  "Kim",
		"role":      "Stylist",
		"phone":     "555-0202",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["member"].(map[string]any)
}

func TestTeamMemberCreateDefaults(t *testing.T) {
	env := setup(t)
	token := env.signup(t, "team@salon.test")

	member := createTeamMember(t, env, token)
	assert.Equal(t, "Available", member["status"])
	assert.Equal(t, "$0/hr", member["hourlyRate"])
	assert.Equal(t, true, member["available"])
}

func TestTeamMemberCreateRequiresFields(t *testing.T) {
	env := setup(t)
	token := env.signup(t, "teamreq@salon.test")

	w := env.do(t, http.MethodPost, "/api/team-members", token, gin.H{
		"firstName": "Riley",
		"role":      "Stylist",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTeamMemberUpdate(t *testing.T) {
	env := setup(t)
	token := env.signup(t, "teamupd@salon.test")

	member := createTeamMember(t, env, token)
	id := fmt.Sprintf("%v", member["id"])

	w := env.do(t, http.MethodPut, "/api/team-members/"+id, token, gin.H{
		"status":     "On Leave",
		"hourlyRate": "$25/hr",
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decode(t, w)["member"].(map[string]any)
	assert.Equal(t, "On Leave", updated["status"])
	assert.Equal(t, "$25/hr", updated["hourlyRate"])
	// Untouched fields stay as they were.
	assert.Equal(t, "Riley", updated["firstName"])

	w = env.do(t, http.MethodPut, "/api/team-members/"+id, token, gin.H{"status": "Retired"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid status", decode(t, w)["message"])
}

func TestTeamMemberOwnershipIsolation(t *testing.T) {
	env := setup(t)
	owner := env.signup(t, "team-a@salon.test")
	intruder := env.signup(t, "team-b@salon.test")

	member := createTeamMember(t, env, owner)
	id := fmt.Sprintf("%v", member["id"])

	foreign := env.do(t, http.MethodDelete, "/api/team-members/"+id, intruder, nil)
	missing := env.do(t, http.MethodDelete, "/api/team-members/999999", intruder, nil)
	require.Equal(t, http.StatusNotFound, foreign.Code)
	require.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, missing.Body.String(), foreign.Body.String())

	// The row is still there for its owner.
	w := env.do(t, http.MethodGet, "/api/team-members", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["members"].([]any), 1)
}

func TestTeamMemberDelete(t *testing.T) {
	env := setup(t)
	token := env.signup(t, "teamdel@salon.test")

	member := createTeamMember(t, env, token)
	id := fmt.Sprintf("%v", member["id"])

	w := env.do(t, http.MethodDelete, "/api/team-members/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Team member deleted successfully!", decode(t, w)["message"])
}
