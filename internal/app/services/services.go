package services

// Services defined in this package:
// - NoteService: CRUD over the user's notes, always scoped to the
//   authenticated owner
// - ChecklistService: AI-generated inspection checklists and contractor
//   questions backed by the assistant client
