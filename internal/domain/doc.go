// Package domain contains the entities shared by the generation pipelines and
// the HTTP layer: grade levels, quizzes, generated images, the tagged Result
// union and the per-submission GenerationState. Nothing here persists beyond
// a single request.
package domain
