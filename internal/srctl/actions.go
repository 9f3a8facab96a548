package srctl

// Indirection layer to allow stubbing in tests

var (
	fnRunGoTests  = runGoTests
	fnBuildEngine = buildEngine
	fnSmoke       = smoke

	fnCheckLib    = checkLib
	fnCheckModels = checkModels

	fnHasNativeLib = hasNativeLib
)
