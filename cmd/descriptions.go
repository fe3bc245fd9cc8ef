package cmd

const rootLongDescription = `Hoppit samples from probabilistic programs whose control flow, and hence
number of random variables, can change from one execution to the next and
whose density may be discontinuous in some coordinates.

It implements nonparametric discontinuous Hamiltonian Monte Carlo
(NP-DHMC): continuous coordinates follow leapfrog dynamics with Gaussian
momentum, discontinuous coordinates carry Laplace momentum and cross
density discontinuities by reflection and refraction, and the coordinate
set may grow or shrink mid-trajectory.`

const runLongDescription = `Run NP-DHMC inference on one of the built-in models and save the sampled
values as a JSON report.

Multiple independent chains can run in parallel; chain i uses seed
--seed+i, so a fixed seed makes the whole run reproducible. With
--importance, an importance-resampling baseline with count*leapfrog-steps
program runs is produced alongside the NP-DHMC reports.`

const listLongDescription = `List the built-in probabilistic programs that can be passed to run.`

const viewLongDescription = `View summary statistics of previously generated sample reports from a
reports directory.`
