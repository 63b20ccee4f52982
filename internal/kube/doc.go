// Package kube provides a Kubernetes client for the deployment flow,
// wrapping k8s.io/client-go for Server-Side Apply of multi-document YAML
// manifests, resource inspection, and annotation directly from kubeconfig
// bytes.
package kube
