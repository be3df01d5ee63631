// Package scaffold generates new template store entries from embedded
// templates. It powers the "aidev create" command, producing a skill
// directory with a pre-filled SKILL.md or a single markdown file for the
// flat categories (agents, workflows, templates, rules).
package scaffold
