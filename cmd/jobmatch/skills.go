package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch-cli/internal/fetch"
	"github.com/jonathan/jobmatch-cli/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage the skill list used for job matching",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show your current skills",
	RunE:  runSkillsList,
}

var skillsAddCmd = &cobra.Command{
	Use:   "add <skill>...",
	Short: "Add one or more skills",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSkillsAdd,
}

var skillsRemoveCmd = &cobra.Command{
	Use:   "remove <skill>...",
	Short: "Remove one or more skills by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSkillsRemove,
}

var skillsExtractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills from job postings and merge them into your list",
	Long:  "Extract skills from free text (a file) or one or more job posting URLs and merge the results into your skill list. New skills are saved immediately.",
	RunE:  runSkillsExtract,
}

var (
	extractTextFile string
	extractURLs     []string
	extractBrowser  bool
)

func init() {
	skillsExtractCmd.Flags().StringVarP(&extractTextFile, "text-file", "t", "", "Path to text file containing the posting")
	skillsExtractCmd.Flags().StringArrayVarP(&extractURLs, "url", "u", nil, "URL to fetch a posting from (repeatable)")
	skillsExtractCmd.Flags().BoolVar(&extractBrowser, "browser", false, "Render the page in a headless browser when plain fetch returns too little text")

	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsAddCmd)
	skillsCmd.AddCommand(skillsRemoveCmd)
	skillsCmd.AddCommand(skillsExtractCmd)
	rootCmd.AddCommand(skillsCmd)
}

// skillsEditor wires an editor seeded from the signed-in identity.
func skillsEditor(a *app) *skills.Editor {
	var current []string
	if id := a.store.Identity(); id != nil {
		current = id.Skills
	}
	return skills.NewEditor(a.client, current)
}

func runSkillsList(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "skills list")
	if err != nil {
		return err
	}
	e := skillsEditor(a)
	a.printer.PrintSkills(e.Skills(), e.Dirty())
	return nil
}

func runSkillsAdd(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "skills add")
	if err != nil {
		return err
	}

	e := skillsEditor(a)
	for _, skill := range args {
		if err := e.Add(skill); err != nil {
			return err
		}
	}
	if !e.Dirty() {
		fmt.Fprintln(os.Stdout, "Nothing to add")
		return nil
	}
	if err := e.Save(cmd.Context()); err != nil {
		return fmt.Errorf("saving skills: %w", err)
	}
	if err := a.store.LoadIdentity(cmd.Context()); err != nil {
		return err
	}

	a.printer.PrintSkills(e.Skills(), false)
	return nil
}

func runSkillsRemove(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd, "skills remove")
	if err != nil {
		return err
	}

	e := skillsEditor(a)
	for _, skill := range args {
		if !e.RemoveByName(skill) {
			fmt.Fprintf(os.Stderr, "Skill %q not found; skipping\n", skill)
		}
	}
	if !e.Dirty() {
		fmt.Fprintln(os.Stdout, "Nothing to remove")
		return nil
	}
	if err := e.Save(cmd.Context()); err != nil {
		return fmt.Errorf("saving skills: %w", err)
	}
	if err := a.store.LoadIdentity(cmd.Context()); err != nil {
		return err
	}

	a.printer.PrintSkills(e.Skills(), false)
	return nil
}

func runSkillsExtract(cmd *cobra.Command, args []string) error {
	if extractTextFile == "" && len(extractURLs) == 0 {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if extractTextFile != "" && len(extractURLs) > 0 {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	a, err := requireAuth(cmd, "skills extract")
	if err != nil {
		return err
	}

	var texts []string
	if extractTextFile != "" {
		data, err := os.ReadFile(extractTextFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", extractTextFile, err)
		}
		texts = []string{string(data)}
	} else {
		opts := fetch.DefaultOptions()
		opts.UseBrowser = extractBrowser || a.cfg.UseBrowser
		if a.cfg.TimeoutSeconds > 0 {
			opts.Timeout = time.Duration(a.cfg.TimeoutSeconds) * time.Second
		}
		texts, err = fetch.PostingTexts(cmd.Context(), extractURLs, opts)
		if err != nil {
			return fmt.Errorf("fetching postings: %w", err)
		}
	}

	e := skillsEditor(a)
	added := 0
	for _, text := range texts {
		n, err := e.ExtractFromText(cmd.Context(), text)
		if err != nil {
			return fmt.Errorf("extracting skills: %w", err)
		}
		added += n
	}
	if added == 0 {
		fmt.Fprintln(os.Stdout, "No new skills found")
		return nil
	}
	if err := e.Save(cmd.Context()); err != nil {
		return fmt.Errorf("saving skills: %w", err)
	}
	if err := a.store.LoadIdentity(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Added %d new skill(s)\n", added)
	a.printer.PrintSkills(e.Skills(), false)
	return nil
}
