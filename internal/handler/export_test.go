package handler

// Export for testing
type DecisionResponse = decisionResponse

var WriteServiceError = writeServiceError
var BootstrapPage = bootstrapPage
