// Package prompts builds the three prompt templates named in SPEC_FULL.md
// §2. A prompt is pure text generation from its bound arguments — no I/O,
// no client dependency (spec §4.1 "Prompts are pure text templates").
package prompts

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// All returns the three prompts, ready for registration.
func All() []registry.Prompt {
	return []registry.Prompt{
		sprintPlanning(),
		issueTriage(),
		retrospective(),
	}
}

func sprintPlanning() registry.Prompt {
	return registry.Prompt{
		Name:        "sprint_planning",
		Description: "Draft a sprint planning agenda for a project's milestone.",
		Args: []registry.PromptArg{
			{Name: "project_id", Description: "Project id to plan for.", Required: true},
			{Name: "milestone_id", Description: "Milestone (sprint) id being planned.", Required: true},
		},
		Handler: func(params map[string]string) (string, error) {
			return "You are planning sprint " + params["milestone_id"] + " for project " + params["project_id"] + ". " +
				"Use taiga_list_user_stories filtered to that milestone to review the candidate backlog, " +
				"taiga_get_milestone_stats to check prior velocity, and taiga_list_users to confirm team capacity. " +
				"Propose which user stories fit the sprint, flag any missing estimates, and note open dependencies.", nil
		},
	}
}

func issueTriage() registry.Prompt {
	return registry.Prompt{
		Name:        "issue_triage",
		Description: "Triage open issues reported since a given date.",
		Args: []registry.PromptArg{
			{Name: "project_id", Description: "Project id to triage.", Required: true},
			{Name: "since", Description: "ISO 8601 date; only consider issues created on or after this date.", Required: true},
		},
		Handler: func(params map[string]string) (string, error) {
			return "Triage the issues reported in project " + params["project_id"] + " since " + params["since"] + ". " +
				"Use taiga_list_issues to pull the candidate set, group by severity and type, and for each " +
				"recommend a priority, an owner from taiga_list_memberships, and whether it blocks the current milestone.", nil
		},
	}
}

func retrospective() registry.Prompt {
	return registry.Prompt{
		Name:        "retrospective",
		Description: "Summarize a completed milestone for a sprint retrospective.",
		Args: []registry.PromptArg{
			{Name: "project_id", Description: "Project id the milestone belongs to.", Required: true},
			{Name: "milestone_id", Description: "Milestone (sprint) id to review.", Required: true},
		},
		Handler: func(params map[string]string) (string, error) {
			return "Prepare a retrospective for milestone " + params["milestone_id"] + " of project " + params["project_id"] + ". " +
				"Pull taiga_get_milestone_stats for burndown and completion numbers, taiga_list_tasks and " +
				"taiga_list_issues scoped to the milestone for what slipped, and summarize what went well, " +
				"what didn't, and one concrete action item for next sprint.", nil
		},
	}
}
