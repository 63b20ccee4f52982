// Package provisioning drives the deployment pipeline: ensure the resource
// group, apply the infrastructure template, connect to the cluster, install
// the controller, apply the workload, wait for the load balancer to
// converge, grant it access to its frontends, annotate the workload and
// summarize the result.
//
// Phases share a Context carrying configuration, platform clients and the
// accumulated State. Fatal phase errors stop the pipeline; degradations
// such as a convergence timeout are recorded as warnings and the pipeline
// continues.
package provisioning
