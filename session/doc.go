// Package session keeps conversation histories between turns.
//
// A Manager owns one state per conversation and runs a compiled graph on it
// for every user turn. Turns of the same conversation never overlap; turns of
// different conversations may run in parallel, for example through RunBatch.
// A failed turn leaves the stored history untouched, so the caller can retry
// or fall back without losing what was said before.
//
//	app, _ := prebuilt.CreateChatbot(model)
//	m := session.New[prebuilt.ConversationState](app, session.AppendConversation)
//	id := m.NewConversation()
//	state, err := m.Chat(ctx, id, "hi")
package session
