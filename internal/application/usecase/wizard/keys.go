package wizard

import (
	"fmt"

	"github.com/google/uuid"
)

// Fixed namespaces inside the key-value store. Each session owner gets its
// own copy of every namespace.
const (
	NamespaceProfile  = "cvos_wizard_profile"
	NamespaceLanguage = "cvos_language"
	NamespaceExport   = "cvos_export_url"
)

func ScopedKey(ownerID uuid.UUID, namespace string) string {
	return fmt.Sprintf("%s:%s", ownerID, namespace)
}
