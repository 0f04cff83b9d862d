// Package generation turns extracted page content into quiz questions
// through a hosted LLM completion endpoint. It owns the three pure stages of
// the pipeline: prompt assembly, the completion-client boundary interface,
// and response normalization. Concrete HTTP clients live under
// internal/platform.
package generation
