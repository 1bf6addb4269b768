package steps

import (
	"net/http"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// scenarioUsername keeps usernames unique across scenarios sharing one server.
func (fc *FeatureContext) scenarioUsername(name string) string {
	return name + "-" + fc.runID
}

func (fc *FeatureContext) iCreateAUserNamed(name string) error {
	return fc.record(fc.apiDriver.CreateUser(fc.scenarioUsername(name)))
}

func (fc *FeatureContext) aUserNamedExists(name string) error {
	fc.require.NoError(fc.iCreateAUserNamed(name))
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.body))

	var user User
	fc.require.NoError(fc.decodeBody(&user))
	fc.require.NotEmpty(user.ID)
	fc.userID = user.ID
	return nil
}
