package steps

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	return fc.record(fc.apiDriver.GetHealthz())
}

func (fc *FeatureContext) theResponseShouldContainStatusInformation() error {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(&data))

	fc.require.Equal("success", data["status"])
	fc.require.Contains(data, "VERSION")
	fc.require.Contains(data, "COMMIT_HASH")
	return nil
}
