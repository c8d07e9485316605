// Package testutil provides shared test doubles for the tambourine packages.
//
// It contains three groups of helpers:
//
// 1. Provider stubs (mock_provider.go):
//   - StubService: an STT and LLM service that never touches the network
//   - StubCreator and FailingCreator: factory creators for builder tests
//   - NewStubFactory and BuildStubSet: a full provider set backed by stubs
//
// 2. Service mocks (mock_services.go):
//   - MockProviderService and MockPromptService: testify mocks of the API
//     services, bundled in MockServices for handler tests
//
// 3. Fixtures (fixtures.go):
//   - AllCredentials: a credential snapshot enabling every catalog entry
//   - AllProviderInfos: the entries published for that snapshot
//
// # Usage
//
//	set := testutil.BuildStubSet(testutil.AllCredentials())
//	service := services.NewProviderService(set, nil)
//
// Packages below internal/app/api/provider cannot import testutil, since it
// depends on them; their tests keep local fakes.
package testutil
