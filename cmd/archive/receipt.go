package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/lixenwraith/archive/page"
	"github.com/lixenwraith/archive/receipt"
)

func receiptCmd() *cobra.Command {
	var (
		message     string
		applicant   string
		lang        string
		contentPath string
	)
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Print the receipt an application would produce",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReceipt(cmd, contentPath, applicant, message, lang)
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "Reason for the date")
	cmd.Flags().StringVar(&applicant, "applicant", "", "Applicant name, defaults to the showcase subject")
	cmd.Flags().StringVar(&lang, "lang", "en", "BCP 47 tag for number formatting")
	cmd.Flags().StringVar(&contentPath, "content", "", "Showcase YAML to load instead of the embedded one")
	return cmd
}

func runReceipt(cmd *cobra.Command, contentPath, applicant, message, lang string) error {
	if strings.TrimSpace(message) == "" {
		return page.ErrMessageRequired
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("parse --lang: %w", err)
	}
	c, err := loadContent(contentPath)
	if err != nil {
		return err
	}
	if applicant == "" {
		applicant = c.Applicant
	}

	r := receipt.Build(time.Now(), applicant, message, receipt.Template(c.Receipt), tag)
	fmt.Fprint(cmd.OutOrStdout(), r.String())
	return nil
}
