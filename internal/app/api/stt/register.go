// Package stt holds the speech-to-text provider clients.
package stt

import "tambourine/internal/app/api/provider"

// Register adds a creator for every STT provider in the catalog
func Register(factory *provider.DefaultFactory) {
	factory.Register(provider.KindSTT, provider.AssemblyAI, newAssemblyAI)
	factory.Register(provider.KindSTT, provider.Cartesia, newCartesia)
	factory.Register(provider.KindSTT, provider.Deepgram, newDeepgram)
	factory.Register(provider.KindSTT, provider.Whisper, newWhisper)
}
