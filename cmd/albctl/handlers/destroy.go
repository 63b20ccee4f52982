package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/huh"
)

// DestroyOptions carries the destroy command flags.
type DestroyOptions struct {
	ConfigPath string
	Yes        bool
}

// confirmDestroy asks for interactive confirmation - replaced in tests.
var confirmDestroy = func(ctx context.Context, resourceGroup string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete resource group %q and everything in it?", resourceGroup)).
			Description("This permanently deletes the cluster, the load balancer, and all data.").
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}
	return confirmed, nil
}

// Destroy handles the destroy command.
//
// Deleting the resource group removes everything the deployment created.
// Without --yes the command asks for confirmation on a terminal and refuses
// to run anywhere else.
func Destroy(ctx context.Context, opts DestroyOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	if !opts.Yes {
		if !stdoutIsTTY() {
			return fmt.Errorf("refusing to delete resource group %s without --yes in a non-interactive session", cfg.ResourceGroup)
		}
		confirmed, err := confirmDestroy(ctx, cfg.ResourceGroup)
		if err != nil {
			return fmt.Errorf("confirmation canceled: %w", err)
		}
		if !confirmed {
			fmt.Println("Destroy canceled.")
			return nil
		}
	}

	client, err := newAzureClient(cfg.SubscriptionID)
	if err != nil {
		return fmt.Errorf("failed to create Azure client: %w", err)
	}

	log.Printf("Deleting resource group %s...", cfg.ResourceGroup)
	if err := client.DeleteResourceGroup(ctx, cfg.ResourceGroup); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}

	log.Printf("Resource group %s deleted", cfg.ResourceGroup)
	return nil
}
